package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/icid-go/icid/models"
)

// MemoryPendingStore keeps pending authentications in process memory.
// Intended for tests and the example binaries.
type MemoryPendingStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*models.PendingAuthentication
}

// NewMemoryPendingStore creates an in-memory pending authentication store.
func NewMemoryPendingStore() *MemoryPendingStore {
	return &MemoryPendingStore{
		ttl:     DefaultPendingTTL,
		entries: make(map[string]*models.PendingAuthentication),
	}
}

// SetTTL sets the TTL for pending authentications.
func (s *MemoryPendingStore) SetTTL(ttl time.Duration) {
	s.mu.Lock()
	s.ttl = ttl
	s.mu.Unlock()
}

// Save stores a pending authentication with TTL.
func (s *MemoryPendingStore) Save(_ context.Context, p *models.PendingAuthentication) error {
	if p.RequestID == "" {
		return errors.New("request_id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.CreatedAt = time.Now().UTC()
	p.ExpiresAt = p.CreatedAt.Add(s.ttl)
	cp := *p
	s.entries[p.RequestID] = &cp
	return nil
}

// Load retrieves a pending authentication by request ID, dropping it when
// expired.
func (s *MemoryPendingStore) Load(_ context.Context, requestID string) (*models.PendingAuthentication, error) {
	s.mu.RLock()
	p, ok := s.entries[requestID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrPendingNotFound
	}
	if p.IsExpired() {
		s.mu.Lock()
		delete(s.entries, requestID)
		s.mu.Unlock()
		return nil, ErrPendingNotFound
	}
	cp := *p
	return &cp, nil
}

// Delete removes a pending authentication.
func (s *MemoryPendingStore) Delete(_ context.Context, requestID string) error {
	s.mu.Lock()
	delete(s.entries, requestID)
	s.mu.Unlock()
	return nil
}
