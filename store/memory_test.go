package store

import (
	"context"
	"testing"
	"time"

	"github.com/icid-go/icid/models"
)

func TestMemoryPendingStoreSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPendingStore()

	p := &models.PendingAuthentication{
		RequestID:        "req-1",
		SessionPublicKey: "deadbeef",
		RedirectURI:      "https://rp.example/cb",
		Scope:            "aaaa bbbb",
		State:            "xyz",
	}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Load(ctx, "req-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.SessionPublicKey != "deadbeef" || got.State != "xyz" {
		t.Fatalf("loaded wrong record: %+v", got)
	}
	if got.ExpiresAt.Before(got.CreatedAt) {
		t.Fatalf("expiry before creation: %+v", got)
	}

	if err := s.Delete(ctx, "req-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Load(ctx, "req-1"); err != ErrPendingNotFound {
		t.Fatalf("got %v, want ErrPendingNotFound", err)
	}
}

func TestMemoryPendingStoreMissingRequestID(t *testing.T) {
	s := NewMemoryPendingStore()
	if err := s.Save(context.Background(), &models.PendingAuthentication{}); err == nil {
		t.Fatal("expected error for missing request_id")
	}
}

func TestMemoryPendingStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPendingStore()
	s.SetTTL(-time.Second)

	p := &models.PendingAuthentication{RequestID: "req-2"}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := s.Load(ctx, "req-2"); err != ErrPendingNotFound {
		t.Fatalf("got %v, want ErrPendingNotFound for expired record", err)
	}
}

func TestMemoryPendingStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryPendingStore()

	p := &models.PendingAuthentication{RequestID: "req-3", State: "one"}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	first, err := s.Load(ctx, "req-3")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	first.State = "mutated"
	second, err := s.Load(ctx, "req-3")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if second.State != "one" {
		t.Fatalf("store leaked internal state: %+v", second)
	}
}
