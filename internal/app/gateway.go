package app

import (
	"context"

	"sigvault/internal/domain"
	"sigvault/internal/services/vault"
)

// localGateway drives the wired services in-process.
type localGateway struct {
	w *Wire
}

// Gateway exposes the wired services as a domain.SignatureGateway.
func (w *Wire) Gateway() domain.SignatureGateway { return localGateway{w: w} }

func (g localGateway) CreateIdentity(ctx context.Context, in domain.NewIdentity) error {
	_, err := g.w.Identities.CreateIdentity(ctx, in)
	return err
}

func (g localGateway) LookupIdentity(ctx context.Context, nif domain.NIF) (domain.Identity, error) {
	return g.w.Identities.LookupIdentity(ctx, nif)
}

func (g localGateway) DeleteIdentity(ctx context.Context, nif domain.NIF) error {
	return g.w.Identities.DeleteIdentity(ctx, nif)
}

func (g localGateway) GenerateKeys(ctx context.Context, nif domain.NIF) (domain.Fingerprint, error) {
	rec, err := g.w.Vault.GenerateKeyPair(ctx, nif)
	if err != nil {
		return "", err
	}
	return vault.Fingerprint(rec)
}

func (g localGateway) PublicKey(ctx context.Context, nif domain.NIF) (domain.PublicKeyInfo, error) {
	rec, err := g.w.Vault.ResolveKeyPair(ctx, nif)
	if err != nil {
		return domain.PublicKeyInfo{}, err
	}
	fp, err := vault.Fingerprint(rec)
	if err != nil {
		return domain.PublicKeyInfo{}, err
	}
	return domain.PublicKeyInfo{
		NIF:         nif.Normalize(),
		PublicKey:   rec.PublicKey,
		Fingerprint: fp,
		CreatedAt:   rec.CreatedAt,
	}, nil
}

func (g localGateway) Sign(ctx context.Context, nif domain.NIF, document []byte) ([]byte, error) {
	return g.w.Signer.SignDocument(ctx, domain.SigningRequest{NIF: nif, Document: document})
}

func (g localGateway) Verify(ctx context.Context, nif domain.NIF, document, signature []byte) (bool, error) {
	return g.w.Verifier.VerifySignature(ctx, domain.VerificationRequest{NIF: nif, Document: document, Signature: signature})
}

var _ domain.SignatureGateway = localGateway{}
