// Package identity registers, looks up and removes the identities that key
// pairs are issued to.
//
// It validates the NIF, assigns the identity its id and creation time, and
// persists it through the domain.IdentityDirectory.
package identity
