// internal/app/wire_test.go
package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"sigvault/internal/app"
	"sigvault/internal/crypto"
	"sigvault/internal/domain"
)

func testConfig(t *testing.T, driver string) app.Config {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.Storage.Driver = driver
	cfg.Storage.Path = filepath.Join(t.TempDir(), "store")
	cfg.Vault.MasterSecret = "wire test master secret"
	return cfg
}

func TestNewWire_RequiresMasterSecret(t *testing.T) {
	cfg := testConfig(t, "memory")
	cfg.Vault.MasterSecret = ""
	if _, err := app.NewWire(cfg); !errors.Is(err, crypto.ErrMasterSecretMissing) {
		t.Fatalf("want ErrMasterSecretMissing, got %v", err)
	}
}

func TestLocalGateway_Flow(t *testing.T) {
	for _, driver := range []string{"memory", "file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			a, err := app.New(testConfig(t, driver))
			if err != nil {
				t.Fatalf("new app: %v", err)
			}
			defer a.Close()
			if a.Remote {
				t.Fatal("local config produced a remote app")
			}
			gw := a.Gateway

			if err := gw.CreateIdentity(ctx, domain.NewIdentity{NIF: "12345678A"}); err != nil {
				t.Fatalf("create: %v", err)
			}
			fp, err := gw.GenerateKeys(ctx, "12345678A")
			if err != nil || len(fp) != 20 {
				t.Fatalf("generate: fp=%q err=%v", fp, err)
			}
			info, err := gw.PublicKey(ctx, "12345678A")
			if err != nil || info.Fingerprint != fp || info.PublicKey == "" {
				t.Fatalf("public key: %+v err=%v", info, err)
			}
			sig, err := gw.Sign(ctx, "12345678A", []byte("Hello"))
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			if ok, err := gw.Verify(ctx, "12345678A", []byte("Hello"), sig); !ok || err != nil {
				t.Fatalf("verify: ok=%v err=%v", ok, err)
			}

			if err := gw.DeleteIdentity(ctx, "12345678A"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := gw.LookupIdentity(ctx, "12345678A"); !errors.Is(err, domain.ErrIdentityNotFound) {
				t.Fatalf("lookup after delete: got %v", err)
			}
		})
	}
}

func TestSetupLogging(t *testing.T) {
	if err := app.SetupLogging("debug"); err != nil {
		t.Fatalf("debug: %v", err)
	}
	if err := app.SetupLogging("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	_ = app.SetupLogging("info")
}
