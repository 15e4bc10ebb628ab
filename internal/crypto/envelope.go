package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"sigvault/internal/domain"
)

const (
	// envelopeVersion is the current sealed-blob format.
	envelopeVersion byte = 1

	envelopeNonceBytes    = chacha20poly1305.NonceSizeX
	envelopeOverheadBytes = 1 + envelopeNonceBytes + chacha20poly1305.Overhead
)

// Seal encrypts plaintext under key with XChaCha20-Poly1305 and a fresh random
// nonce. The blob layout is version || nonce || ciphertext || tag, with the
// version byte bound as associated data.
func Seal(plaintext []byte, key MasterKey) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCryptoBackend, err)
	}

	nonce := make([]byte, envelopeNonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", domain.ErrCryptoBackend, err)
	}
	out := make([]byte, 0, envelopeOverheadBytes+len(plaintext))
	out = append(out, envelopeVersion)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, []byte{envelopeVersion}), nil
}

// Open reverses Seal. Any malformed, truncated, tampered or foreign-key blob
// fails with domain.ErrDecryption.
func Open(blob []byte, key MasterKey) ([]byte, error) {
	if len(blob) < envelopeOverheadBytes {
		return nil, fmt.Errorf("%w: sealed blob truncated (%d bytes)", domain.ErrDecryption, len(blob))
	}
	if blob[0] != envelopeVersion {
		return nil, fmt.Errorf("%w: unsupported envelope version %d", domain.ErrDecryption, blob[0])
	}

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCryptoBackend, err)
	}
	nonce := blob[1 : 1+envelopeNonceBytes]
	pt, err := aead.Open(nil, nonce, blob[1+envelopeNonceBytes:], []byte{blob[0]})
	if err != nil {
		return nil, fmt.Errorf("%w: wrong master secret or corrupted ciphertext", domain.ErrDecryption)
	}
	return pt, nil
}
