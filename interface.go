package icid

import "context"

// Message is a protocol message carried as OAuth2 query parameters in a
// redirect URL. Implemented by models.AuthenticationRequest and
// models.AuthenticationResponse.
type Message interface {
	// Kind reports which of the two message shapes this is.
	Kind() MessageKind
}

// Principal is an opaque ledger identifier owned by a collaborating identity
// subsystem. This module never inspects it beyond its canonical text form.
type Principal interface {
	// Text returns the canonical text encoding of the principal.
	Text() string
}

// PrincipalCodec parses canonical principal text into identifiers.
// Parse must fail on malformed text; the error is propagated unchanged to
// callers of the scope codec.
type PrincipalCodec interface {
	Parse(text string) (Principal, error)
}

// ChainIssuer produces a delegation chain for an authenticated session.
// Implemented by the identity subsystem on the provider side. The returned
// chain is opaque to this module beyond being JSON-serializable.
type ChainIssuer interface {
	Issue(ctx context.Context, sessionPublicKeyHex string, targets []Principal) (any, error)
}
