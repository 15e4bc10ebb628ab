package interfaces

import (
	"context"

	"github.com/google/uuid"

	domaintypes "sigvault/internal/domain/types"
)

// IdentityDirectory stores registered identities keyed by NIF.
type IdentityDirectory interface {
	// CreateIdentity fails with ErrIdentityAlreadyExists when the NIF is taken.
	CreateIdentity(ctx context.Context, identity domaintypes.Identity) error
	FindIdentityByNIF(
		ctx context.Context,
		nif domaintypes.NIF,
	) (domaintypes.Identity, bool, error)
	// DeleteIdentity removes the identity and, with it, its key pair record.
	DeleteIdentity(ctx context.Context, nif domaintypes.NIF) error
}

// KeyPairRepository persists at most one key pair record per owner.
type KeyPairRepository interface {
	FindByOwner(
		ctx context.Context,
		ownerID uuid.UUID,
	) (domaintypes.KeyPairRecord, bool, error)
	ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)
	// Insert fails with ErrKeysAlreadyExist when the owner already has a record.
	Insert(ctx context.Context, record domaintypes.KeyPairRecord) error
}
