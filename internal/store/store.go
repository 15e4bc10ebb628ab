package store

import (
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/domain"
)

var log = logging.Logger("sigvault/store")

// Storage drivers accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Backend is a store that serves both the identity directory and the
// key-pair repository.
type Backend interface {
	domain.IdentityDirectory
	domain.KeyPairRepository
	io.Closer
}

// Open returns the backend for driver. path is the database file for sqlite
// and the data directory for file; memory ignores it.
func Open(driver, path string) (Backend, error) {
	switch driver {
	case DriverSQLite, "":
		return NewSQLiteStore(path)
	case DriverFile:
		return NewFileStore(path), nil
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
