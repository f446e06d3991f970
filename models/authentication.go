package models

import "github.com/icid-go/icid"

// SessionIdentity carries the hex-encoded public key of the session the
// relying party wants delegated to. It travels as the OAuth2 login_hint.
type SessionIdentity struct {
	Hex string `json:"hex"`
}

// AuthenticationRequest is the protocol-native authentication request a
// relying party sends to an identity provider. RedirectURI always holds the
// re-serialized form of a parsed absolute URL, never raw input text.
// Empty State means no state was supplied.
type AuthenticationRequest struct {
	SessionIdentity SessionIdentity `json:"session_identity"`
	RedirectURI     string          `json:"redirect_uri"`
	State           string          `json:"state,omitempty"`
	Scope           string          `json:"scope"`
}

// Kind implements icid.Message.
func (r *AuthenticationRequest) Kind() icid.MessageKind {
	return icid.KindAuthenticationRequest
}

// AuthenticationResponse is the protocol-native result of a successful
// delegation issuance. AccessToken carries the hex-encoded delegation chain
// produced by the bearer codec; ExpiresIn is in seconds.
type AuthenticationResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	State       string `json:"state,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

// Kind implements icid.Message.
func (r *AuthenticationResponse) Kind() icid.MessageKind {
	return icid.KindAuthenticationResponse
}
