package vault

import (
	"context"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
	"sigvault/internal/services/identity"
	"sigvault/internal/util/memzero"
)

var log = logging.Logger("sigvault/vault")

// Service is the key vault. It is safe for concurrent use.
type Service struct {
	dir   domain.IdentityDirectory
	repo  domain.KeyPairRepository
	key   crypto.MasterKey
	locks *keyedMutex
	now   func() time.Time
}

// New returns a vault that seals private keys under key.
func New(dir domain.IdentityDirectory, repo domain.KeyPairRepository, key crypto.MasterKey) *Service {
	return &Service{
		dir:   dir,
		repo:  repo,
		key:   key,
		locks: newKeyedMutex(),
		now:   time.Now,
	}
}

// GenerateKeyPair issues the key pair of nif. It fails with
// domain.ErrKeysAlreadyExist if the identity already has one, including when a
// concurrent caller won the race.
func (s *Service) GenerateKeyPair(ctx context.Context, nif domain.NIF) (domain.KeyPairRecord, error) {
	owner, err := s.resolveIdentity(ctx, nif)
	if err != nil {
		return domain.KeyPairRecord{}, err
	}

	unlock := s.locks.Lock(owner.ID.String())
	defer unlock()

	exists, err := s.repo.ExistsForOwner(ctx, owner.ID)
	if err != nil {
		return domain.KeyPairRecord{}, err
	}
	if exists {
		return domain.KeyPairRecord{}, fmt.Errorf("%w: %s", domain.ErrKeysAlreadyExist, owner.NIF)
	}

	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		log.Errorf("Key generation failed for %s: %v", owner.NIF, err)
		return domain.KeyPairRecord{}, err
	}
	sealed, err := crypto.Seal(kp.PrivateKey, s.key)
	memzero.Zero(kp.PrivateKey)
	if err != nil {
		log.Errorf("Sealing private key failed for %s: %v", owner.NIF, err)
		return domain.KeyPairRecord{}, err
	}

	rec := domain.KeyPairRecord{
		ID:                  uuid.New(),
		OwnerID:             owner.ID,
		PublicKey:           crypto.EncodeKey(kp.PublicKey),
		EncryptedPrivateKey: crypto.B64(sealed),
		CreatedAt:           s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return domain.KeyPairRecord{}, err
	}

	log.Infof("Generated key pair for %s (fingerprint %s)", owner.NIF, crypto.Fingerprint(kp.PublicKey))
	return rec, nil
}

// ResolveKeyPair returns the stored key pair of nif.
func (s *Service) ResolveKeyPair(ctx context.Context, nif domain.NIF) (domain.KeyPairRecord, error) {
	owner, err := s.resolveIdentity(ctx, nif)
	if err != nil {
		return domain.KeyPairRecord{}, err
	}
	rec, ok, err := s.repo.FindByOwner(ctx, owner.ID)
	if err != nil {
		return domain.KeyPairRecord{}, err
	}
	if !ok {
		return domain.KeyPairRecord{}, fmt.Errorf("%w: %s", domain.ErrKeysNotFound, owner.NIF)
	}
	return rec, nil
}

// PrivateKey unseals and parses the private key of rec.
func (s *Service) PrivateKey(rec domain.KeyPairRecord) (*rsa.PrivateKey, error) {
	sealed, err := crypto.FromB64(rec.EncryptedPrivateKey)
	if err != nil {
		log.Errorf("Stored private key of %s is not valid base64: %v", rec.OwnerID, err)
		return nil, fmt.Errorf("%w: sealed private key: %v", domain.ErrDecryption, err)
	}
	der, err := crypto.Open(sealed, s.key)
	if err != nil {
		log.Errorf("Cannot unseal private key of %s: %v", rec.OwnerID, err)
		return nil, err
	}
	defer memzero.Zero(der)

	priv, err := crypto.ParsePrivateKey(der)
	if err != nil {
		log.Errorf("Stored private key of %s is corrupt: %v", rec.OwnerID, err)
		return nil, err
	}
	return priv, nil
}

// PublicKey parses the public key of rec.
func (s *Service) PublicKey(rec domain.KeyPairRecord) (*rsa.PublicKey, error) {
	der, err := crypto.DecodeKey(rec.PublicKey)
	if err != nil {
		log.Errorf("Stored public key of %s is not valid base64: %v", rec.OwnerID, err)
		return nil, err
	}
	pub, err := crypto.ParsePublicKey(der)
	if err != nil {
		log.Errorf("Stored public key of %s is corrupt: %v", rec.OwnerID, err)
		return nil, err
	}
	return pub, nil
}

// Fingerprint returns the short fingerprint of rec's public key.
func Fingerprint(rec domain.KeyPairRecord) (domain.Fingerprint, error) {
	der, err := crypto.DecodeKey(rec.PublicKey)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(der), nil
}

func (s *Service) resolveIdentity(ctx context.Context, nif domain.NIF) (domain.Identity, error) {
	nif, err := identity.ValidateNIF(nif)
	if err != nil {
		return domain.Identity{}, err
	}
	id, ok, err := s.dir.FindIdentityByNIF(ctx, nif)
	if err != nil {
		return domain.Identity{}, err
	}
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: %s", domain.ErrIdentityNotFound, nif)
	}
	return id, nil
}

// Compile-time assertion that Service implements domain.KeyVault.
var _ domain.KeyVault = (*Service)(nil)
