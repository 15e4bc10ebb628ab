package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"sigvault/internal/domain"
)

// RSAKeyBits is the modulus size of every issued key pair.
const RSAKeyBits = 2048

// KeyPair holds the standard binary encodings of an RSA key pair.
type KeyPair struct {
	PublicKey  []byte // X.509 SubjectPublicKeyInfo, DER
	PrivateKey []byte // PKCS#8, DER
}

// GenerateKeyPair returns a fresh RSA-2048 key pair in DER form.
func GenerateKeyPair() (KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, RSAKeyBits)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: rsa keygen: %v", domain.ErrCryptoBackend, err)
	}
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: marshal public key: %v", domain.ErrCryptoBackend, err)
	}
	sk, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: marshal private key: %v", domain.ErrCryptoBackend, err)
	}
	return KeyPair{PublicKey: pub, PrivateKey: sk}, nil
}

// ParsePrivateKey decodes a PKCS#8 DER RSA private key.
func ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	k, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: pkcs8: %v", domain.ErrKeyFormat, err)
	}
	rk, ok := k.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: pkcs8 key is %T, want RSA", domain.ErrKeyFormat, k)
	}
	return rk, nil
}

// ParsePublicKey decodes an X.509 SubjectPublicKeyInfo DER RSA public key.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	k, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: spki: %v", domain.ErrKeyFormat, err)
	}
	rk, ok := k.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: spki key is %T, want RSA", domain.ErrKeyFormat, k)
	}
	return rk, nil
}

// EncodeKey renders key bytes in their textual boundary form.
func EncodeKey(der []byte) string { return B64(der) }

// DecodeKey reverses EncodeKey. Stored keys that fail to decode are a format
// problem, not caller input, so the error wraps domain.ErrKeyFormat.
func DecodeKey(s string) ([]byte, error) {
	b, err := FromB64(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyFormat, err)
	}
	return b, nil
}
