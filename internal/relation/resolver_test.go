package relation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/foodlist/service/internal/apperr"
	"github.com/foodlist/service/internal/models"
	"github.com/foodlist/service/internal/storage/sqlite"
)

func newTestResolver(t *testing.T) (*Resolver, *sqlite.SQLiteStore) {
	t.Helper()

	dir := t.TempDir()
	store, err := sqlite.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(dir)
	})
	return NewResolver(store), store
}

func TestResolveNilIdentifierIsNotAnError(t *testing.T) {
	r, _ := newTestResolver(t)

	h, err := r.Household(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected nil identifier to resolve to nil, got error: %v", err)
	}
	if h != nil {
		t.Errorf("expected nil entity, got %+v", h)
	}
}

func TestResolveUnknownIdentifierFails(t *testing.T) {
	r, _ := newTestResolver(t)

	id := int64(42)
	_, err := r.User(context.Background(), &id)

	var refErr *apperr.ReferenceNotFound
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceNotFound, got %v", err)
	}
	if refErr.Entity != "user" || refErr.ID != 42 {
		t.Errorf("expected user/42 in error, got %s/%d", refErr.Entity, refErr.ID)
	}
}

func TestResolveKnownIdentifier(t *testing.T) {
	r, store := newTestResolver(t)
	ctx := context.Background()

	u := &models.User{Username: "finn", PasswordHash: "x", Enabled: true}
	if err := store.SaveUser(ctx, u); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}

	resolved, err := r.User(ctx, &u.ID)
	if err != nil {
		t.Fatalf("expected resolution to succeed, got %v", err)
	}
	if resolved.Username != "finn" {
		t.Errorf("expected username finn, got %s", resolved.Username)
	}
}

func TestResolveListFailsWhole(t *testing.T) {
	// One bad identifier in a list fails the whole resolution; nothing is
	// silently dropped.
	r, store := newTestResolver(t)
	ctx := context.Background()

	u := &models.User{Username: "finn", PasswordHash: "x", Enabled: true}
	if err := store.SaveUser(ctx, u); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}

	_, err := r.Users(ctx, []int64{u.ID, 4711})

	var refErr *apperr.ReferenceNotFound
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceNotFound, got %v", err)
	}
	if refErr.ID != 4711 {
		t.Errorf("expected failing id 4711, got %d", refErr.ID)
	}
}

func TestResolveListAllKnown(t *testing.T) {
	r, store := newTestResolver(t)
	ctx := context.Background()

	u1 := &models.User{Username: "finn", PasswordHash: "x", Enabled: true}
	u2 := &models.User{Username: "mara", PasswordHash: "x", Enabled: true}
	for _, u := range []*models.User{u1, u2} {
		if err := store.SaveUser(ctx, u); err != nil {
			t.Fatalf("failed to save user: %v", err)
		}
	}

	users, err := r.Users(ctx, []int64{u1.ID, u2.ID})
	if err != nil {
		t.Fatalf("expected resolution to succeed, got %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}
