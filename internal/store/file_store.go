package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"sigvault/internal/domain"
)

// stateFile holds identities (by NIF) and key-pair records (by owner id)
// together, so every mutation is a single atomic replace.
const stateFile = "sigvault.json"

type fileState struct {
	Identities map[string]domain.Identity      `json:"identities"`
	KeyPairs   map[string]domain.KeyPairRecord `json:"keyPairs"`
}

// FileStore persists identities and key-pair records as one JSON document
// under dir.
//
// A mutex guards the file so check-then-insert and cascade delete are atomic
// within the process. Both collections are rewritten together, so a failed
// write never leaves an identity without its keys or the reverse.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// ---------- Identity directory ----------

// CreateIdentity stores id, refusing a NIF that is already registered.
func (s *FileStore) CreateIdentity(_ context.Context, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := st.Identities[id.NIF.String()]; ok {
		return fmt.Errorf("%w: %s", domain.ErrIdentityAlreadyExists, id.NIF)
	}
	st.Identities[id.NIF.String()] = id
	return s.save(st)
}

// FindIdentityByNIF returns the identity registered under nif.
func (s *FileStore) FindIdentityByNIF(_ context.Context, nif domain.NIF) (domain.Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return domain.Identity{}, false, err
	}
	id, ok := st.Identities[nif.String()]
	return id, ok, nil
}

// DeleteIdentity removes the identity and its key-pair record in one write.
func (s *FileStore) DeleteIdentity(_ context.Context, nif domain.NIF) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	id, ok := st.Identities[nif.String()]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrIdentityNotFound, nif)
	}
	delete(st.KeyPairs, id.ID.String())
	delete(st.Identities, nif.String())
	return s.save(st)
}

// ---------- Key-pair repository ----------

// FindByOwner returns the key-pair record owned by owner.
func (s *FileStore) FindByOwner(_ context.Context, owner uuid.UUID) (domain.KeyPairRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return domain.KeyPairRecord{}, false, err
	}
	rec, ok := st.KeyPairs[owner.String()]
	return rec, ok, nil
}

// ExistsForOwner reports whether owner already has a key-pair record.
func (s *FileStore) ExistsForOwner(ctx context.Context, owner uuid.UUID) (bool, error) {
	_, ok, err := s.FindByOwner(ctx, owner)
	return ok, err
}

// Insert stores rec. A second record for the same owner fails with
// domain.ErrKeysAlreadyExist; an unknown owner with domain.ErrIdentityNotFound.
func (s *FileStore) Insert(_ context.Context, rec domain.KeyPairRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	if !hasOwner(st.Identities, rec.OwnerID) {
		return fmt.Errorf("%w: owner %s", domain.ErrIdentityNotFound, rec.OwnerID)
	}
	if _, ok := st.KeyPairs[rec.OwnerID.String()]; ok {
		return fmt.Errorf("%w: owner %s", domain.ErrKeysAlreadyExist, rec.OwnerID)
	}
	st.KeyPairs[rec.OwnerID.String()] = rec
	return s.save(st)
}

// Close is a no-op; every write is already durable.
func (s *FileStore) Close() error { return nil }

// ---------- helpers ----------

func (s *FileStore) path() string { return filepath.Join(s.dir, stateFile) }

func (s *FileStore) load() (*fileState, error) {
	st := &fileState{}
	if err := readJSON(s.path(), st); err != nil {
		return nil, fmt.Errorf("read %s: %w", stateFile, err)
	}
	if st.Identities == nil {
		st.Identities = make(map[string]domain.Identity)
	}
	if st.KeyPairs == nil {
		st.KeyPairs = make(map[string]domain.KeyPairRecord)
	}
	return st, nil
}

func (s *FileStore) save(st *fileState) error {
	return writeJSON(s.path(), st, 0o600)
}

func hasOwner(ids map[string]domain.Identity, owner uuid.UUID) bool {
	for _, id := range ids {
		if id.ID == owner {
			return true
		}
	}
	return false
}

// Compile-time assertions that FileStore implements the storage interfaces.
var (
	_ domain.IdentityDirectory = (*FileStore)(nil)
	_ domain.KeyPairRepository = (*FileStore)(nil)
	_ Backend                  = (*FileStore)(nil)
)
