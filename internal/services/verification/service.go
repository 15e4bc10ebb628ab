package verification

import (
	"context"

	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
)

var log = logging.Logger("sigvault/verification")

// Service verifies signatures on behalf of registered identities.
type Service struct {
	vault domain.KeyVault
}

// New returns a verification service that takes keys from vault.
func New(vault domain.KeyVault) *Service { return &Service{vault: vault} }

// VerifySignature reports whether req.Signature is a valid signature of
// req.Document under the public key of req.NIF.
func (s *Service) VerifySignature(ctx context.Context, req domain.VerificationRequest) (bool, error) {
	rec, err := s.vault.ResolveKeyPair(ctx, req.NIF)
	if err != nil {
		return false, err
	}
	pub, err := s.vault.PublicKey(rec)
	if err != nil {
		return false, err
	}
	ok, err := crypto.VerifyRSA(pub, req.Document, req.Signature)
	if err != nil {
		return false, err
	}
	log.Debugf("Verified signature for %s: %t", req.NIF, ok)
	return ok, nil
}

// Compile-time assertion that Service implements domain.VerificationService.
var _ domain.VerificationService = (*Service)(nil)
