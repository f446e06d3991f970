// Package errors defines the typed failures surfaced by the protocol
// translation layer. All failures are deterministic and returned to the
// caller immediately; nothing here is retryable.
package errors

import "errors"

var (
	// ErrMalformedRedirectURI is returned when an authorization request's
	// redirect_uri does not parse as an absolute URL.
	ErrMalformedRedirectURI = errors.New("redirect_uri is not a valid absolute URL")

	// ErrMalformedToken is returned when a bearer token is not valid hex or
	// does not contain UTF-8 JSON.
	ErrMalformedToken = errors.New("bearer token is not hex-encoded JSON")
)

// ValidationError reports a decoded bearer token whose shape is invalid.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidation creates a ValidationError with the given message.
func NewValidation(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
