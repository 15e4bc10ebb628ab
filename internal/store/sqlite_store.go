package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"sigvault/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS identities (
	id         TEXT PRIMARY KEY,
	nif        TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL DEFAULT '',
	last_name  TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS keypairs (
	id                    TEXT PRIMARY KEY,
	owner_id              TEXT NOT NULL UNIQUE REFERENCES identities(id) ON DELETE CASCADE,
	public_key            TEXT NOT NULL,
	encrypted_private_key TEXT NOT NULL,
	created_at            INTEGER NOT NULL
);
`

// SQLiteStore persists identities and key-pair records in a SQLite database.
//
// The schema enforces NIF uniqueness, one key pair per owner and cascade
// delete; constraint failures are translated to domain errors.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; check-then-insert races resolve on the UNIQUE index.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Infof("SQLite store initialized at %s", dbPath)
	return &SQLiteStore{db: db}, nil
}

// ---------- Identity directory ----------

// CreateIdentity stores id, refusing a NIF that is already registered.
func (s *SQLiteStore) CreateIdentity(ctx context.Context, id domain.Identity) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO identities (id, nif, first_name, last_name, created_at) VALUES (?, ?, ?, ?, ?)",
		id.ID.String(), id.NIF.String(), id.FirstName, id.LastName, id.CreatedAt.UnixNano(),
	)
	if isConstraint(err, sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("%w: %s", domain.ErrIdentityAlreadyExists, id.NIF)
	}
	if err != nil {
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

// FindIdentityByNIF returns the identity registered under nif.
func (s *SQLiteStore) FindIdentityByNIF(ctx context.Context, nif domain.NIF) (domain.Identity, bool, error) {
	var (
		id        domain.Identity
		rawID     string
		rawNIF    string
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, nif, first_name, last_name, created_at FROM identities WHERE nif = ?",
		nif.String(),
	).Scan(&rawID, &rawNIF, &id.FirstName, &id.LastName, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("query identity: %w", err)
	}

	if id.ID, err = uuid.Parse(rawID); err != nil {
		return domain.Identity{}, false, fmt.Errorf("identity %s: bad id: %w", nif, err)
	}
	id.NIF = domain.NIF(rawNIF)
	id.CreatedAt = time.Unix(0, createdAt).UTC()
	return id, true, nil
}

// DeleteIdentity removes the identity; the key-pair row goes with it through
// the foreign-key cascade.
func (s *SQLiteStore) DeleteIdentity(ctx context.Context, nif domain.NIF) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM identities WHERE nif = ?", nif.String())
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrIdentityNotFound, nif)
	}
	return nil
}

// ---------- Key-pair repository ----------

// FindByOwner returns the key-pair record owned by owner.
func (s *SQLiteStore) FindByOwner(ctx context.Context, owner uuid.UUID) (domain.KeyPairRecord, bool, error) {
	var (
		rec       domain.KeyPairRecord
		rawID     string
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, public_key, encrypted_private_key, created_at FROM keypairs WHERE owner_id = ?",
		owner.String(),
	).Scan(&rawID, &rec.PublicKey, &rec.EncryptedPrivateKey, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.KeyPairRecord{}, false, nil
	}
	if err != nil {
		return domain.KeyPairRecord{}, false, fmt.Errorf("query key pair: %w", err)
	}

	if rec.ID, err = uuid.Parse(rawID); err != nil {
		return domain.KeyPairRecord{}, false, fmt.Errorf("key pair of %s: bad id: %w", owner, err)
	}
	rec.OwnerID = owner
	rec.CreatedAt = time.Unix(0, createdAt).UTC()
	return rec, true, nil
}

// ExistsForOwner reports whether owner already has a key-pair record.
func (s *SQLiteStore) ExistsForOwner(ctx context.Context, owner uuid.UUID) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM keypairs WHERE owner_id = ?", owner.String()).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count key pairs: %w", err)
	}
	return n > 0, nil
}

// Insert stores rec, refusing a second record for the same owner.
func (s *SQLiteStore) Insert(ctx context.Context, rec domain.KeyPairRecord) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO keypairs (id, owner_id, public_key, encrypted_private_key, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.ID.String(), rec.OwnerID.String(), rec.PublicKey, rec.EncryptedPrivateKey, rec.CreatedAt.UnixNano(),
	)
	switch {
	case err == nil:
		return nil
	case isConstraint(err, sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey):
		return fmt.Errorf("%w: owner %s", domain.ErrKeysAlreadyExist, rec.OwnerID)
	case isConstraint(err, sqlite3.ErrConstraintForeignKey):
		return fmt.Errorf("%w: owner %s", domain.ErrIdentityNotFound, rec.OwnerID)
	default:
		return fmt.Errorf("insert key pair: %w", err)
	}
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func isConstraint(err error, codes ...sqlite3.ErrNoExtended) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	for _, c := range codes {
		if se.ExtendedCode == c {
			return true
		}
	}
	return false
}

var _ Backend = (*SQLiteStore)(nil)
