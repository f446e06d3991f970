package icid

// ResponseType the type of authorization request
type ResponseType string

func (rt ResponseType) String() string { return string(rt) }

// IC-ID only uses the implicit-style token response; there is no code grant.
const (
	Token ResponseType = "token"
)

// TokenTypeBearer is the only token_type the protocol issues. Responses
// decoded without a token_type default to it.
const TokenTypeBearer = "bearer"

// MessageKind identifies which protocol message travels over the shared
// redirect channel.
type MessageKind string

const (
	KindAuthenticationRequest  MessageKind = "authentication-request"
	KindAuthenticationResponse MessageKind = "authentication-response"
)
