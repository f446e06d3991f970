package models

// Generic OAuth2 wire shapes. These are the only shapes that travel as raw
// query-string key/value pairs; everything protocol-native is translated
// through them. Field names follow RFC 6749.

// AuthorizationRequest is the OAuth2 authorization request as it appears in
// an identity provider's redirect URL.
type AuthorizationRequest struct {
	ResponseType string `json:"response_type"`
	LoginHint    string `json:"login_hint"`
	RedirectURI  string `json:"redirect_uri"`
	Scope        string `json:"scope,omitempty"`
	State        string `json:"state,omitempty"`
}

// AccessTokenResponse is the OAuth2 access-token response as it appears in
// the relying party's callback URL. ExpiresIn is carried on the wire as a
// decimal integer string.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
	State       string `json:"state,omitempty"`
}
