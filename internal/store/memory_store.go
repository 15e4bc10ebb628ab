package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"sigvault/internal/domain"
)

// MemoryStore keeps identities and key-pair records in process memory.
type MemoryStore struct {
	mu         sync.RWMutex
	identities map[domain.NIF]domain.Identity
	keyPairs   map[uuid.UUID]domain.KeyPairRecord
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		identities: make(map[domain.NIF]domain.Identity),
		keyPairs:   make(map[uuid.UUID]domain.KeyPairRecord),
	}
}

// CreateIdentity stores id, refusing a NIF that is already registered.
func (s *MemoryStore) CreateIdentity(_ context.Context, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.identities[id.NIF]; ok {
		return fmt.Errorf("%w: %s", domain.ErrIdentityAlreadyExists, id.NIF)
	}
	s.identities[id.NIF] = id
	return nil
}

// FindIdentityByNIF returns the identity registered under nif.
func (s *MemoryStore) FindIdentityByNIF(_ context.Context, nif domain.NIF) (domain.Identity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.identities[nif]
	return id, ok, nil
}

// DeleteIdentity removes the identity and its key-pair record.
func (s *MemoryStore) DeleteIdentity(_ context.Context, nif domain.NIF) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.identities[nif]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrIdentityNotFound, nif)
	}
	delete(s.keyPairs, id.ID)
	delete(s.identities, nif)
	return nil
}

// FindByOwner returns the key-pair record owned by owner.
func (s *MemoryStore) FindByOwner(_ context.Context, owner uuid.UUID) (domain.KeyPairRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.keyPairs[owner]
	return rec, ok, nil
}

// ExistsForOwner reports whether owner already has a key-pair record.
func (s *MemoryStore) ExistsForOwner(ctx context.Context, owner uuid.UUID) (bool, error) {
	_, ok, err := s.FindByOwner(ctx, owner)
	return ok, err
}

// Insert stores rec, refusing a second record for the same owner.
func (s *MemoryStore) Insert(_ context.Context, rec domain.KeyPairRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ownerExists(rec.OwnerID) {
		return fmt.Errorf("%w: owner %s", domain.ErrIdentityNotFound, rec.OwnerID)
	}
	if _, ok := s.keyPairs[rec.OwnerID]; ok {
		return fmt.Errorf("%w: owner %s", domain.ErrKeysAlreadyExist, rec.OwnerID)
	}
	s.keyPairs[rec.OwnerID] = rec
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

// ownerExists expects s.mu to be held.
func (s *MemoryStore) ownerExists(owner uuid.UUID) bool {
	for _, id := range s.identities {
		if id.ID == owner {
			return true
		}
	}
	return false
}

var _ Backend = (*MemoryStore)(nil)
