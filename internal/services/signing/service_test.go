// internal/services/signing/service_test.go
package signing_test

import (
	"context"
	"errors"
	"testing"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
	"sigvault/internal/services/identity"
	"sigvault/internal/services/signing"
	"sigvault/internal/services/vault"
	"sigvault/internal/store"
)

func newVault(t *testing.T) *vault.Service {
	t.Helper()
	st := store.NewMemoryStore()
	if _, err := identity.New(st).CreateIdentity(context.Background(), domain.NewIdentity{NIF: "12345678A"}); err != nil {
		t.Fatalf("create identity: %v", err)
	}
	key, err := crypto.ParseMasterSecret("signing test master secret")
	if err != nil {
		t.Fatalf("master secret: %v", err)
	}
	return vault.New(st, st, key)
}

func TestSignDocument_BeforeKeys(t *testing.T) {
	svc := signing.New(newVault(t))
	_, err := svc.SignDocument(context.Background(), domain.SigningRequest{NIF: "12345678A", Document: []byte("Hello")})
	if !errors.Is(err, domain.ErrKeysNotFound) {
		t.Fatalf("want ErrKeysNotFound, got %v", err)
	}
	_, err = svc.SignDocument(context.Background(), domain.SigningRequest{NIF: "nobody", Document: []byte("Hello")})
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("want ErrIdentityNotFound, got %v", err)
	}
}

func TestSignDocument_VerifiesUnderStoredKey(t *testing.T) {
	ctx := context.Background()
	v := newVault(t)
	rec, err := v.GenerateKeyPair(ctx, "12345678A")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	sig, err := signing.New(v).SignDocument(ctx, domain.SigningRequest{NIF: "12345678A", Document: []byte("Hello")})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	pub, err := v.PublicKey(rec)
	if err != nil {
		t.Fatalf("public key: %v", err)
	}
	if ok, err := crypto.VerifyRSA(pub, []byte("Hello"), sig); !ok || err != nil {
		t.Fatalf("verify: ok=%v err=%v", ok, err)
	}
}

func TestSignDocument_EmptyDocument(t *testing.T) {
	ctx := context.Background()
	v := newVault(t)
	if _, err := v.GenerateKeyPair(ctx, "12345678A"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	sig, err := signing.New(v).SignDocument(ctx, domain.SigningRequest{NIF: "12345678A"})
	if err != nil || len(sig) == 0 {
		t.Fatalf("sign empty document: len=%d err=%v", len(sig), err)
	}
}
