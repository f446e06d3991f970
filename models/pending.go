package models

import "time"

// PendingAuthentication represents an in-flight authentication request held
// by the identity provider between receiving the relying party's redirect
// and issuing the delegation response. Stored in Valkey with a TTL.
type PendingAuthentication struct {
	RequestID        string    `json:"request_id"`
	SessionPublicKey string    `json:"session_public_key"`
	RedirectURI      string    `json:"redirect_uri"`
	Scope            string    `json:"scope"`
	State            string    `json:"state,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// IsExpired checks if the pending authentication has expired.
func (p *PendingAuthentication) IsExpired() bool {
	return time.Now().After(p.ExpiresAt)
}

// FromAuthenticationRequest fills the request-derived fields.
func (p *PendingAuthentication) FromAuthenticationRequest(r *AuthenticationRequest) {
	p.SessionPublicKey = r.SessionIdentity.Hex
	p.RedirectURI = r.RedirectURI
	p.Scope = r.Scope
	p.State = r.State
}
