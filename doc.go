// Package icid implements the bridge between the IC-ID identity-delegation
// authentication protocol and the OAuth2 wire format carried over HTTP
// redirect query strings.
//
// A relying party builds an AuthenticationRequest, encodes it as an OAuth2
// authorization request and redirects the user to an identity provider. The
// provider answers with an OAuth2 access-token response whose access_token
// carries an encoded delegation chain. This module does the reshaping in
// both directions; it does not sign, verify or store anything itself.
package icid
