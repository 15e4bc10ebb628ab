package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"

	"sigvault/internal/domain"
)

// SignRSA returns the RSASSA-PKCS1-v1_5 signature of SHA-256(msg).
func SignRSA(priv *rsa.PrivateKey, msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, stdcrypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: rsa sign: %v", domain.ErrCryptoBackend, err)
	}
	return sig, nil
}

// VerifyRSA reports whether sig is a valid RSASSA-PKCS1-v1_5 signature of
// SHA-256(msg) under pub. A signature that is empty or not exactly one modulus
// long is malformed input rather than a mismatch.
func VerifyRSA(pub *rsa.PublicKey, msg, sig []byte) (bool, error) {
	if len(sig) == 0 || len(sig) != pub.Size() {
		return false, fmt.Errorf("%w: signature is %d bytes, want %d", domain.ErrMalformedInput, len(sig), pub.Size())
	}
	digest := sha256.Sum256(msg)
	err := rsa.VerifyPKCS1v15(pub, stdcrypto.SHA256, digest[:], sig)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, rsa.ErrVerification):
		return false, nil
	default:
		return false, fmt.Errorf("%w: rsa verify: %v", domain.ErrCryptoBackend, err)
	}
}
