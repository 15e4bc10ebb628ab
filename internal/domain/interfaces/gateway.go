package interfaces

import (
	"context"

	domaintypes "sigvault/internal/domain/types"
)

// SignatureGateway is the operation surface the CLI drives, either against
// locally wired services or a remote server over HTTP.
type SignatureGateway interface {
	CreateIdentity(ctx context.Context, in domaintypes.NewIdentity) error
	LookupIdentity(ctx context.Context, nif domaintypes.NIF) (domaintypes.Identity, error)
	DeleteIdentity(ctx context.Context, nif domaintypes.NIF) error
	GenerateKeys(ctx context.Context, nif domaintypes.NIF) (domaintypes.Fingerprint, error)
	PublicKey(ctx context.Context, nif domaintypes.NIF) (domaintypes.PublicKeyInfo, error)
	Sign(ctx context.Context, nif domaintypes.NIF, document []byte) ([]byte, error)
	Verify(ctx context.Context, nif domaintypes.NIF, document, signature []byte) (bool, error)
}
