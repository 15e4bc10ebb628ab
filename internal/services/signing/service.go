package signing

import (
	"context"

	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
)

var log = logging.Logger("sigvault/signing")

// Service signs documents on behalf of registered identities.
type Service struct {
	vault domain.KeyVault
}

// New returns a signing service that takes keys from vault.
func New(vault domain.KeyVault) *Service { return &Service{vault: vault} }

// SignDocument returns the RSASSA-PKCS1-v1_5 / SHA-256 signature of
// req.Document under the private key of req.NIF. The key is unsealed for this
// call only.
func (s *Service) SignDocument(ctx context.Context, req domain.SigningRequest) ([]byte, error) {
	rec, err := s.vault.ResolveKeyPair(ctx, req.NIF)
	if err != nil {
		return nil, err
	}
	priv, err := s.vault.PrivateKey(rec)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.SignRSA(priv, req.Document)
	if err != nil {
		log.Errorf("Signing for %s failed: %v", req.NIF, err)
		return nil, err
	}
	log.Debugf("Signed %d-byte document for %s", len(req.Document), req.NIF)
	return sig, nil
}

// Compile-time assertion that Service implements domain.SigningService.
var _ domain.SigningService = (*Service)(nil)
