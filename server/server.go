// Package server is the Gin-based identity-provider shell around the
// protocol translation core. It decodes incoming authorization requests,
// keeps them pending while the identity subsystem issues a delegation chain,
// and redirects the encoded response back to the relying party.
package server

import (
	"log"
	"time"

	"github.com/icid-go/icid"
	"github.com/icid-go/icid/scope"
	"github.com/icid-go/icid/store"
)

// Server wires the authorize endpoint to its collaborators. Issuer and
// Requests must be set; Scopes must carry the principal codec of the target
// ledger.
type Server struct {
	Config   *Config
	Issuer   icid.ChainIssuer
	Scopes   *scope.Codec
	Requests store.PendingStore
}

// Config holds the protocol-level settings of the authorize endpoint.
type Config struct {
	// ExpiresIn is the lifetime in seconds reported on issued responses.
	ExpiresIn int64
	// PendingTTL bounds how long a request may stay pending.
	PendingTTL time.Duration
}

// NewConfig create to configuration instance
func NewConfig() *Config {
	return &Config{
		ExpiresIn:  3600,
		PendingTTL: store.DefaultPendingTTL,
	}
}

// NewServer create an identity-provider server
func NewServer(cfg *Config, issuer icid.ChainIssuer, scopes *scope.Codec, requests store.PendingStore) *Server {
	if cfg == nil {
		cfg = NewConfig()
	}
	if requests == nil {
		requests = store.NewMemoryPendingStore()
	}
	if cfg.PendingTTL > 0 {
		if st, ok := requests.(interface{ SetTTL(time.Duration) }); ok {
			st.SetTTL(cfg.PendingTTL)
		}
	}
	return &Server{
		Config:   cfg,
		Issuer:   issuer,
		Scopes:   scopes,
		Requests: requests,
	}
}

// logf is a hook for tests; defaults to the stdlib logger.
var logf = log.Printf
