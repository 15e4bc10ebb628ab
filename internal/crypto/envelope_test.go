// internal/crypto/envelope_test.go
package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
)

func testKey(t *testing.T, secret string) crypto.MasterKey {
	t.Helper()
	k, err := crypto.ParseMasterSecret(secret)
	if err != nil {
		t.Fatalf("parse master secret: %v", err)
	}
	return k
}

func TestEnvelope_RoundTrip(t *testing.T) {
	key := testKey(t, "correct horse battery staple")
	msg := []byte("pkcs8 private key bytes")

	blob, err := crypto.Seal(msg, key)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Contains(blob, msg) {
		t.Fatal("sealed blob contains plaintext")
	}
	got, err := crypto.Open(blob, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestEnvelope_FreshNonce(t *testing.T) {
	key := testKey(t, "correct horse battery staple")
	a, _ := crypto.Seal([]byte("same"), key)
	b, _ := crypto.Seal([]byte("same"), key)
	if bytes.Equal(a, b) {
		t.Fatal("two seals of the same plaintext are identical")
	}
}

func TestEnvelope_WrongKey_Fails(t *testing.T) {
	blob, err := crypto.Seal([]byte("secret"), testKey(t, "correct horse battery staple"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	_, err = crypto.Open(blob, testKey(t, "a different master phrase"))
	if !errors.Is(err, domain.ErrDecryption) {
		t.Fatalf("want ErrDecryption, got %v", err)
	}
}

func TestEnvelope_TamperAndTruncate_Fail(t *testing.T) {
	key := testKey(t, "correct horse battery staple")
	blob, err := crypto.Seal([]byte("secret"), key)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	cases := map[string][]byte{
		"empty":     nil,
		"truncated": blob[:10],
		"flipped":   append([]byte(nil), blob...),
		"version":   append([]byte(nil), blob...),
	}
	cases["flipped"][len(blob)-1] ^= 0x01
	cases["version"][0] = 0x7f

	for name, b := range cases {
		if _, err := crypto.Open(b, key); !errors.Is(err, domain.ErrDecryption) {
			t.Fatalf("%s: want ErrDecryption, got %v", name, err)
		}
	}
}
