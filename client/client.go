// Package client is the relying-party side of the bridge: it builds the
// identity provider's authorize URL for a session and decodes the provider's
// callback back into protocol-native form.
package client

import (
	"fmt"
	"net/url"

	"github.com/icid-go/icid"
	"github.com/icid-go/icid/bearer"
	icerrors "github.com/icid-go/icid/errors"
	"github.com/icid-go/icid/models"
	"github.com/icid-go/icid/protocol"
	"github.com/icid-go/icid/scope"
)

// Client holds the relying party's view of one identity provider.
type Client struct {
	// IdentityProvider is the provider's authorize endpoint.
	IdentityProvider *url.URL
	// Scopes encodes the canister targets the party wants delegations for.
	Scopes *scope.Codec
}

// NewAuthenticationRequest builds a protocol-native request for the given
// session key, normalizing redirectURI and packing targets into the scope
// string. state may be empty.
func (c *Client) NewAuthenticationRequest(sessionPublicKeyHex, redirectURI, state string, targets scope.Targets) (*models.AuthenticationRequest, error) {
	u, err := url.Parse(redirectURI)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", icerrors.ErrMalformedRedirectURI, redirectURI)
	}
	return &models.AuthenticationRequest{
		SessionIdentity: models.SessionIdentity{Hex: sessionPublicKeyHex},
		RedirectURI:     u.String(),
		Scope:           c.Scopes.Encode(targets),
		State:           state,
	}, nil
}

// AuthorizeURL encodes the request onto the identity provider URL.
func (c *Client) AuthorizeURL(req *models.AuthenticationRequest) *url.URL {
	return protocol.BuildAuthenticationRequestURL(c.IdentityProvider, req)
}

// DecodeCallback classifies and decodes the provider's redirect. Returns
// (nil, nil) when the URL carries neither message shape.
func (c *Client) DecodeCallback(callback *url.URL) (icid.Message, error) {
	return protocol.DecodeQuery(callback.Query())
}

// DelegationChain extracts and shape-validates the delegation chain carried
// by a decoded response. Verification of the chain belongs to the identity
// subsystem, not to this client.
func (c *Client) DelegationChain(resp *models.AuthenticationResponse) (*models.BearerToken, error) {
	return bearer.Decode(resp.AccessToken)
}
