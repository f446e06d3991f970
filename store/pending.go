// Package store persists in-flight authentication requests on the identity
// provider side between the relying party's redirect and the delegation
// response.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/icid-go/icid/models"
	valkey "github.com/valkey-io/valkey-go"
)

// ErrPendingNotFound indicates the pending authentication was not found.
var ErrPendingNotFound = errors.New("pending authentication not found")

// DefaultPendingTTL is the default TTL for pending authentications (10 minutes).
const DefaultPendingTTL = 10 * time.Minute

// PendingStore is the persistence surface the identity provider shell needs.
type PendingStore interface {
	Save(ctx context.Context, p *models.PendingAuthentication) error
	Load(ctx context.Context, requestID string) (*models.PendingAuthentication, error)
	Delete(ctx context.Context, requestID string) error
}

// ValkeyPendingStore stores pending authentications in Valkey (Redis-compatible).
type ValkeyPendingStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyPendingStore creates a Valkey-backed pending authentication store.
// addr example: "127.0.0.1:6379"; prefix helps namespace keys.
func NewValkeyPendingStore(addr string, prefix string) (*ValkeyPendingStore, error) {
	cli, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "icid:"
	}
	return &ValkeyPendingStore{
		client: cli,
		prefix: prefix,
		ttl:    DefaultPendingTTL,
	}, nil
}

// NewValkeyPendingStoreWithClient creates a store with an existing Valkey client.
func NewValkeyPendingStoreWithClient(client valkey.Client, prefix string) *ValkeyPendingStore {
	if prefix == "" {
		prefix = "icid:"
	}
	return &ValkeyPendingStore{
		client: client,
		prefix: prefix,
		ttl:    DefaultPendingTTL,
	}
}

// SetTTL sets the TTL for pending authentications.
func (s *ValkeyPendingStore) SetTTL(ttl time.Duration) {
	s.ttl = ttl
}

func (s *ValkeyPendingStore) key(requestID string) string {
	return fmt.Sprintf("%spending:%s", s.prefix, requestID)
}

// Save stores a pending authentication with TTL.
func (s *ValkeyPendingStore) Save(ctx context.Context, p *models.PendingAuthentication) error {
	if p.RequestID == "" {
		return errors.New("request_id is required")
	}

	p.CreatedAt = time.Now().UTC()
	p.ExpiresAt = p.CreatedAt.Add(s.ttl)

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal pending authentication: %w", err)
	}

	key := s.key(p.RequestID)
	return s.client.Do(ctx, s.client.B().Set().Key(key).Value(string(data)).Ex(s.ttl).Build()).Error()
}

// Load retrieves a pending authentication by request ID.
func (s *ValkeyPendingStore) Load(ctx context.Context, requestID string) (*models.PendingAuthentication, error) {
	key := s.key(requestID)

	res := s.client.Do(ctx, s.client.B().Get().Key(key).Build())
	if res.Error() != nil {
		if valkey.IsValkeyNil(res.Error()) {
			return nil, ErrPendingNotFound
		}
		return nil, res.Error()
	}

	val, err := res.ToString()
	if err != nil || val == "" {
		return nil, ErrPendingNotFound
	}

	var p models.PendingAuthentication
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending authentication: %w", err)
	}

	if p.IsExpired() {
		_ = s.Delete(ctx, requestID)
		return nil, ErrPendingNotFound
	}

	return &p, nil
}

// Delete removes a pending authentication.
func (s *ValkeyPendingStore) Delete(ctx context.Context, requestID string) error {
	key := s.key(requestID)
	return s.client.Do(ctx, s.client.B().Del().Key(key).Build()).Error()
}
