package protocol

import (
	"net/url"
	"strconv"

	"github.com/icid-go/icid/models"
)

// BuildAuthenticationRequestURL copies the identity provider URL and sets
// the request's wire fields as query parameters. Absent fields (empty state
// or scope) are skipped, never written as empty or stringified parameters.
func BuildAuthenticationRequestURL(identityProvider *url.URL, req *models.AuthenticationRequest) *url.URL {
	u := *identityProvider
	wire := ToOAuth2Request(req)

	q := u.Query()
	setOrRemove(q, ParamResponseType, wire.ResponseType)
	setOrRemove(q, ParamLoginHint, wire.LoginHint)
	setOrRemove(q, ParamRedirectURI, wire.RedirectURI)
	setOrRemove(q, ParamScope, wire.Scope)
	setOrRemove(q, ParamState, wire.State)
	u.RawQuery = q.Encode()
	return &u
}

// BuildResponseRedirectURL starts from the relying party's redirect URI,
// preserving any query parameters already on it, and sets each wire field of
// the response. Absent fields remove the parameter from the URL.
func BuildResponseRedirectURL(resp *models.AuthenticationResponse, requestRedirectURI string) (*url.URL, error) {
	u, err := url.Parse(requestRedirectURI)
	if err != nil {
		return nil, err
	}
	wire := ToOAuth2Response(resp)

	expiresIn := ""
	if wire.ExpiresIn != 0 {
		expiresIn = strconv.FormatInt(wire.ExpiresIn, 10)
	}

	q := u.Query()
	setOrRemove(q, ParamAccessToken, wire.AccessToken)
	setOrRemove(q, ParamTokenType, wire.TokenType)
	setOrRemove(q, ParamExpiresIn, expiresIn)
	setOrRemove(q, ParamScope, wire.Scope)
	setOrRemove(q, ParamState, wire.State)
	u.RawQuery = q.Encode()
	return u, nil
}

// setOrRemove treats the empty string as absent: absent removes the
// parameter, anything else overwrites it.
func setOrRemove(q url.Values, key, value string) {
	if value == "" {
		q.Del(key)
		return
	}
	q.Set(key, value)
}
