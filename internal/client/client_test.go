// internal/client/client_test.go
package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sigvault/internal/client"
	"sigvault/internal/crypto"
	"sigvault/internal/domain"
	"sigvault/internal/httpapi"
	"sigvault/internal/services/identity"
	"sigvault/internal/services/signing"
	"sigvault/internal/services/vault"
	"sigvault/internal/services/verification"
	"sigvault/internal/store"
)

func newClient(t *testing.T, opts httpapi.Options) *client.HTTP {
	t.Helper()
	st := store.NewMemoryStore()
	key, err := crypto.ParseMasterSecret("client test master secret")
	if err != nil {
		t.Fatalf("master secret: %v", err)
	}
	v := vault.New(st, st, key)
	srv := httptest.NewServer(httpapi.New(httpapi.Services{
		Identities: identity.New(st),
		Vault:      v,
		Signer:     signing.New(v),
		Verifier:   verification.New(v),
	}, opts))
	t.Cleanup(srv.Close)
	return client.NewHTTP(srv.URL + "/")
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, httpapi.Options{})

	if err := c.CreateIdentity(ctx, domain.NewIdentity{FirstName: "Ana", NIF: "12345678A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	id, err := c.LookupIdentity(ctx, "12345678A")
	if err != nil || id.FirstName != "Ana" {
		t.Fatalf("lookup: %+v err=%v", id, err)
	}

	fp, err := c.GenerateKeys(ctx, "12345678A")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	info, err := c.PublicKey(ctx, "12345678A")
	if err != nil {
		t.Fatalf("public key: %v", err)
	}
	if info.Fingerprint != fp {
		t.Fatalf("fingerprint %q from generate, %q from lookup", fp, info.Fingerprint)
	}

	doc := []byte("Document to sign")
	sig, err := c.Sign(ctx, "12345678A", doc)
	if err != nil || len(sig) != 256 {
		t.Fatalf("sign: len=%d err=%v", len(sig), err)
	}
	ok, err := c.Verify(ctx, "12345678A", doc, sig)
	if err != nil || !ok {
		t.Fatalf("verify: ok=%v err=%v", ok, err)
	}
	ok, err = c.Verify(ctx, "12345678A", []byte("Document to sigm"), sig)
	if err != nil || ok {
		t.Fatalf("verify tampered: ok=%v err=%v", ok, err)
	}

	if err := c.DeleteIdentity(ctx, "12345678A"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestClient_ErrorsMapToSentinels(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, httpapi.Options{})

	if _, err := c.GenerateKeys(ctx, "nobody"); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("generate unknown: got %v", err)
	}
	if err := c.CreateIdentity(ctx, domain.NewIdentity{NIF: "12345678A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.CreateIdentity(ctx, domain.NewIdentity{NIF: "12345678A"}); !errors.Is(err, domain.ErrIdentityAlreadyExists) {
		t.Fatalf("duplicate: got %v", err)
	}
	if _, err := c.Sign(ctx, "12345678A", []byte("x")); !errors.Is(err, domain.ErrKeysNotFound) {
		t.Fatalf("sign without keys: got %v", err)
	}
	if _, err := c.GenerateKeys(ctx, "12345678A"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := c.GenerateKeys(ctx, "12345678A"); !errors.Is(err, domain.ErrKeysAlreadyExist) {
		t.Fatalf("second generate: got %v", err)
	}
	if _, err := c.Verify(ctx, "12345678A", []byte("x"), []byte("short")); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("short signature: got %v", err)
	}
}

func TestClient_RateLimited(t *testing.T) {
	c := newClient(t, httpapi.Options{RateLimitRPS: 0.001, RateLimitBurst: 1})
	ctx := context.Background()

	_ = c.CreateIdentity(ctx, domain.NewIdentity{NIF: "12345678A"})
	if err := c.CreateIdentity(ctx, domain.NewIdentity{NIF: "87654321B"}); !errors.Is(err, client.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
}

func TestClient_UnknownErrorKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.NewHTTP(srv.URL).GenerateKeys(context.Background(), "12345678A")
	if err == nil || domain.KindOf(err) != domain.KindInternal {
		t.Fatalf("want unclassified error, got %v", err)
	}
}
