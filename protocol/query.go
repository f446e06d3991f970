package protocol

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/icid-go/icid"
	"github.com/icid-go/icid/models"
)

// OAuth2 query parameter names shared by both message kinds.
const (
	ParamResponseType = "response_type"
	ParamLoginHint    = "login_hint"
	ParamRedirectURI  = "redirect_uri"
	ParamScope        = "scope"
	ParamState        = "state"
	ParamAccessToken  = "access_token"
	ParamTokenType    = "token_type"
	ParamExpiresIn    = "expires_in"
)

// DecodeQuery classifies the query parameters of a redirect URL and decodes
// them into a protocol-native message. Returns (nil, nil) when neither
// message shape is recognizable. A parameter with an empty value counts as
// absent, like everywhere else in this package.
//
// Classification is by field presence only: access_token wins. A query
// string carrying both access_token and login_hint is decoded as a response
// and login_hint is ignored.
func DecodeQuery(values url.Values) (icid.Message, error) {
	if values.Get(ParamAccessToken) != "" {
		return decodeResponse(values)
	}
	if values.Get(ParamLoginHint) != "" && values.Get(ParamRedirectURI) != "" {
		return decodeRequest(values)
	}
	return nil, nil
}

func decodeResponse(values url.Values) (icid.Message, error) {
	wire := &models.AccessTokenResponse{
		AccessToken: values.Get(ParamAccessToken),
		TokenType:   values.Get(ParamTokenType),
		Scope:       values.Get(ParamScope),
		State:       values.Get(ParamState),
	}
	if raw := values.Get(ParamExpiresIn); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expires_in is not a decimal integer: %q", raw)
		}
		wire.ExpiresIn = n
	}
	return FromOAuth2Response(wire), nil
}

func decodeRequest(values url.Values) (icid.Message, error) {
	wire := &models.AuthorizationRequest{
		ResponseType: values.Get(ParamResponseType),
		LoginHint:    values.Get(ParamLoginHint),
		RedirectURI:  values.Get(ParamRedirectURI),
		Scope:        values.Get(ParamScope),
		State:        values.Get(ParamState),
	}
	req, err := FromOAuth2Request(wire)
	if err != nil {
		return nil, err
	}
	return req, nil
}
