// Package store provides persistence for identities and their key-pair records.
//
// Three backends implement both domain.IdentityDirectory and
// domain.KeyPairRepository:
//   - SQLiteStore: the default; uniqueness and cascade enforced by the schema
//   - FileStore: one JSON document under a directory, replaced atomically
//   - MemoryStore: process-local maps, used by tests and throwaway runs
//
// Every backend refuses a second key-pair record for the same owner with
// domain.ErrKeysAlreadyExist, and deleting an identity removes its record.
// All methods are safe for concurrent use.
package store
