package interfaces

import (
	"context"
	"crypto/rsa"

	domaintypes "sigvault/internal/domain/types"
)

// IdentityService registers, looks up and removes identities.
type IdentityService interface {
	CreateIdentity(
		ctx context.Context,
		in domaintypes.NewIdentity,
	) (domaintypes.Identity, error)
	LookupIdentity(ctx context.Context, nif domaintypes.NIF) (domaintypes.Identity, error)
	DeleteIdentity(ctx context.Context, nif domaintypes.NIF) error
}

// KeyVault issues, stores and unseals identity key pairs.
type KeyVault interface {
	GenerateKeyPair(
		ctx context.Context,
		nif domaintypes.NIF,
	) (domaintypes.KeyPairRecord, error)
	ResolveKeyPair(
		ctx context.Context,
		nif domaintypes.NIF,
	) (domaintypes.KeyPairRecord, error)
	PrivateKey(record domaintypes.KeyPairRecord) (*rsa.PrivateKey, error)
	PublicKey(record domaintypes.KeyPairRecord) (*rsa.PublicKey, error)
}

// SigningService signs documents with an identity's private key.
type SigningService interface {
	SignDocument(ctx context.Context, req domaintypes.SigningRequest) ([]byte, error)
}

// VerificationService checks document signatures against an identity's public key.
type VerificationService interface {
	VerifySignature(ctx context.Context, req domaintypes.VerificationRequest) (bool, error)
}
