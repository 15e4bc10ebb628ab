package app

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/domain"
	"sigvault/internal/httpapi"
	"sigvault/internal/services/identity"
	"sigvault/internal/services/signing"
	"sigvault/internal/services/vault"
	"sigvault/internal/services/verification"
	"sigvault/internal/store"
)

var log = logging.Logger("sigvault/app")

// Wire bundles the store and services built from a Config.
type Wire struct {
	Store      store.Backend
	Identities domain.IdentityService
	Vault      domain.KeyVault
	Signer     domain.SigningService
	Verifier   domain.VerificationService
}

// NewWire constructs the dependency graph from cfg. It fails when no usable
// master secret is configured.
func NewWire(cfg Config) (*Wire, error) {
	key, err := cfg.MasterKey()
	if err != nil {
		return nil, fmt.Errorf("master secret: %w", err)
	}
	defer key.Wipe()

	backend, err := store.Open(cfg.Storage.Driver, cfg.StoragePath())
	if err != nil {
		return nil, err
	}
	log.Infof("Using %s storage", cfg.Storage.Driver)

	// The vault keeps its own copy of the key.
	v := vault.New(backend, backend, key)

	return &Wire{
		Store:      backend,
		Identities: identity.New(backend),
		Vault:      v,
		Signer:     signing.New(v),
		Verifier:   verification.New(v),
	}, nil
}

// Server returns an HTTP server over the wired services.
func (w *Wire) Server(cfg Config, metrics *httpapi.Metrics) *httpapi.Server {
	return httpapi.New(httpapi.Services{
		Identities: w.Identities,
		Vault:      w.Vault,
		Signer:     w.Signer,
		Verifier:   w.Verifier,
	}, httpapi.Options{
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Metrics:        metrics,
	})
}

// Close releases the store.
func (w *Wire) Close() error { return w.Store.Close() }
