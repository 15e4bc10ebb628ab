package types

import (
	"time"

	"github.com/google/uuid"
)

// KeyPairRecord is the persisted key pair of one identity.
//
// PublicKey is base64 of the X.509 SubjectPublicKeyInfo DER encoding.
// EncryptedPrivateKey is base64 of the sealed PKCS#8 DER encoding.
type KeyPairRecord struct {
	ID                  uuid.UUID `json:"id"`
	OwnerID             uuid.UUID `json:"ownerId"`
	PublicKey           string    `json:"publicKey"`
	EncryptedPrivateKey string    `json:"encryptedPrivateKey"`
	CreatedAt           time.Time `json:"createdAt"`
}

// PublicKeyInfo is the public half of an identity's key pair as shown to
// callers.
type PublicKeyInfo struct {
	NIF         NIF         `json:"nif"`
	PublicKey   string      `json:"publicKey"`
	Fingerprint Fingerprint `json:"fingerprint"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// SigningRequest asks for a signature over Document with the key pair of NIF.
type SigningRequest struct {
	NIF      NIF
	Document []byte
}

// VerificationRequest asks whether Signature is valid over Document for NIF.
type VerificationRequest struct {
	NIF       NIF
	Document  []byte
	Signature []byte
}
