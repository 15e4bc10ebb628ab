// internal/services/identity/service_test.go
package identity_test

import (
	"context"
	"errors"
	"testing"

	"sigvault/internal/domain"
	"sigvault/internal/services/identity"
	"sigvault/internal/store"
)

func TestCreateIdentity_OK(t *testing.T) {
	ctx := context.Background()
	svc := identity.New(store.NewMemoryStore())

	id, err := svc.CreateIdentity(ctx, domain.NewIdentity{FirstName: " Ana ", LastName: "Silva", NIF: " 12345678A "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id.NIF != "12345678A" || id.FirstName != "Ana" {
		t.Fatalf("not normalized: %+v", id)
	}
	if id.CreatedAt.IsZero() {
		t.Fatal("creation time not set")
	}

	got, err := svc.LookupIdentity(ctx, "12345678A")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.ID != id.ID {
		t.Fatalf("lookup returned %s, want %s", got.ID, id.ID)
	}
}

func TestCreateIdentity_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := identity.New(store.NewMemoryStore())

	if _, err := svc.CreateIdentity(ctx, domain.NewIdentity{NIF: "12345678A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.CreateIdentity(ctx, domain.NewIdentity{NIF: "12345678A"})
	if !errors.Is(err, domain.ErrIdentityAlreadyExists) {
		t.Fatalf("want ErrIdentityAlreadyExists, got %v", err)
	}
}

func TestValidateNIF(t *testing.T) {
	good := []domain.NIF{"12345678A", "X-1234567", "  Y7654321B\t"}
	for _, n := range good {
		if _, err := identity.ValidateNIF(n); err != nil {
			t.Fatalf("%q: unexpected error %v", n, err)
		}
	}

	bad := []domain.NIF{"", "   ", "1234 5678", "../etc", "123456789012345678901234567890123"}
	for _, n := range bad {
		if _, err := identity.ValidateNIF(n); !errors.Is(err, domain.ErrMalformedInput) {
			t.Fatalf("%q: want ErrMalformedInput, got %v", n, err)
		}
	}
}

func TestLookupAndDelete_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := identity.New(store.NewMemoryStore())

	if _, err := svc.LookupIdentity(ctx, "nobody"); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("lookup: want ErrIdentityNotFound, got %v", err)
	}
	if err := svc.DeleteIdentity(ctx, "nobody"); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("delete: want ErrIdentityNotFound, got %v", err)
	}
}
