// Package protocol translates between protocol-native authentication
// messages and their OAuth2 wire shapes, classifies redirect query strings,
// and builds redirect URLs. Every function is pure and safe for concurrent
// use.
//
// An absent logical value is represented as the empty string throughout.
// Query serialization treats absent uniformly: absent fields are never
// written, and when rewriting an existing URL they are removed.
package protocol

import (
	"fmt"
	"net/url"

	"github.com/icid-go/icid"
	"github.com/icid-go/icid/errors"
	"github.com/icid-go/icid/models"
)

// ToOAuth2Response renames an AuthenticationResponse into the OAuth2
// access-token-response shape. State and Scope pass through unchanged,
// including when absent.
func ToOAuth2Response(resp *models.AuthenticationResponse) *models.AccessTokenResponse {
	return &models.AccessTokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   resp.ExpiresIn,
		Scope:       resp.Scope,
		State:       resp.State,
	}
}

// FromOAuth2Response is the inverse rename. An absent token_type defaults to
// bearer.
func FromOAuth2Response(w *models.AccessTokenResponse) *models.AuthenticationResponse {
	tokenType := w.TokenType
	if tokenType == "" {
		tokenType = icid.TokenTypeBearer
	}
	return &models.AuthenticationResponse{
		AccessToken: w.AccessToken,
		TokenType:   tokenType,
		ExpiresIn:   w.ExpiresIn,
		Scope:       w.Scope,
		State:       w.State,
	}
}

// ToOAuth2Request renames an AuthenticationRequest into the OAuth2
// authorization-request shape. response_type is fixed to token and the
// session public key travels as login_hint. RedirectURI is already
// normalized by FromOAuth2Request or the client constructor.
func ToOAuth2Request(req *models.AuthenticationRequest) *models.AuthorizationRequest {
	return &models.AuthorizationRequest{
		ResponseType: icid.Token.String(),
		LoginHint:    req.SessionIdentity.Hex,
		RedirectURI:  req.RedirectURI,
		Scope:        req.Scope,
		State:        req.State,
	}
}

// FromOAuth2Request is the inverse rename. redirect_uri must parse as an
// absolute URL and is stored re-serialized; scope defaults to the empty
// string when absent.
func FromOAuth2Request(w *models.AuthorizationRequest) (*models.AuthenticationRequest, error) {
	u, err := url.Parse(w.RedirectURI)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", errors.ErrMalformedRedirectURI, w.RedirectURI)
	}
	return &models.AuthenticationRequest{
		SessionIdentity: models.SessionIdentity{Hex: w.LoginHint},
		RedirectURI:     u.String(),
		Scope:           w.Scope,
		State:           w.State,
	}, nil
}
