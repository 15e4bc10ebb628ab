package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"sigvault/internal/util/memzero"
)

const (
	// MasterKeyBytes is the size of the key that seals private keys at rest.
	MasterKeyBytes = chacha20poly1305.KeySize

	// minSecretPhraseLength bounds secrets that are not raw base64 keys.
	minSecretPhraseLength = 16

	// Argon2id parameters for passphrase secrets. The salt is fixed so the
	// same phrase always yields the same key across restarts.
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonSalt    = "sigvault master key v1"
)

var (
	// ErrMasterSecretMissing is returned when no master secret was configured.
	ErrMasterSecretMissing = errors.New("master secret not configured")

	// ErrMasterSecretWeak is returned for secrets too short to stretch.
	ErrMasterSecretWeak = errors.New("master secret too short: use 32 base64-encoded bytes or a phrase of at least 16 characters")
)

// MasterKey is the process-wide symmetric key that seals every stored private key.
type MasterKey [MasterKeyBytes]byte

// Wipe zeroes the key in place.
func (k *MasterKey) Wipe() { memzero.Zero(k[:]) }

// ParseMasterSecret turns a configured secret into a MasterKey.
//
// A value that decodes as standard base64 to exactly MasterKeyBytes is used as
// is. Any other value of at least 16 characters is stretched with Argon2id.
func ParseMasterSecret(secret string) (MasterKey, error) {
	var key MasterKey
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return key, ErrMasterSecretMissing
	}

	if raw, err := base64.StdEncoding.DecodeString(secret); err == nil && len(raw) == MasterKeyBytes {
		copy(key[:], raw)
		memzero.Zero(raw)
		return key, nil
	}

	if len(secret) < minSecretPhraseLength {
		return key, ErrMasterSecretWeak
	}
	derived := argon2.IDKey([]byte(secret), []byte(argonSalt), argonTime, argonMemory, argonThreads, MasterKeyBytes)
	copy(key[:], derived)
	memzero.Zero(derived)
	return key, nil
}

// GenerateMasterSecret returns a fresh random master secret in the base64 form
// accepted by ParseMasterSecret.
func GenerateMasterSecret() (string, error) {
	var raw [MasterKeyBytes]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	defer memzero.Zero(raw[:])
	return B64(raw[:]), nil
}
