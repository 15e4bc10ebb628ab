// internal/crypto/sign_test.go
package crypto_test

import (
	"crypto/rsa"
	"errors"
	"testing"

	"sigvault/internal/crypto"
	"sigvault/internal/domain"
)

func newRSA(t *testing.T) (*rsa.PrivateKey, *rsa.PublicKey) {
	t.Helper()
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	priv, err := crypto.ParsePrivateKey(kp.PrivateKey)
	if err != nil {
		t.Fatalf("parse private: %v", err)
	}
	pub, err := crypto.ParsePublicKey(kp.PublicKey)
	if err != nil {
		t.Fatalf("parse public: %v", err)
	}
	return priv, pub
}

func TestSignVerify_RoundTrip(t *testing.T) {
	priv, pub := newRSA(t)
	doc := []byte("Hello")

	sig, err := crypto.SignRSA(priv, doc)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if len(sig) != 256 {
		t.Fatalf("signature is %d bytes, want 256", len(sig))
	}
	ok, err := crypto.VerifyRSA(pub, doc, sig)
	if err != nil || !ok {
		t.Fatalf("verify: ok=%v err=%v", ok, err)
	}
}

func TestSign_Deterministic(t *testing.T) {
	priv, _ := newRSA(t)
	a, _ := crypto.SignRSA(priv, []byte("Hello"))
	b, _ := crypto.SignRSA(priv, []byte("Hello"))
	if string(a) != string(b) {
		t.Fatal("PKCS#1 v1.5 signatures of the same document differ")
	}
}

func TestVerify_Mismatch_IsFalse(t *testing.T) {
	priv, pub := newRSA(t)
	_, otherPub := newRSA(t)
	sig, _ := crypto.SignRSA(priv, []byte("Hello"))

	if ok, err := crypto.VerifyRSA(pub, []byte("Hellp"), sig); ok || err != nil {
		t.Fatalf("tampered document: ok=%v err=%v", ok, err)
	}
	if ok, err := crypto.VerifyRSA(otherPub, []byte("Hello"), sig); ok || err != nil {
		t.Fatalf("foreign key: ok=%v err=%v", ok, err)
	}

	flipped := append([]byte(nil), sig...)
	flipped[0] ^= 0x01
	if ok, err := crypto.VerifyRSA(pub, []byte("Hello"), flipped); ok || err != nil {
		t.Fatalf("flipped signature: ok=%v err=%v", ok, err)
	}
}

func TestVerify_WrongLength_IsMalformed(t *testing.T) {
	priv, pub := newRSA(t)
	sig, _ := crypto.SignRSA(priv, []byte("Hello"))

	for _, s := range [][]byte{nil, sig[:100], append(sig, 0)} {
		if _, err := crypto.VerifyRSA(pub, []byte("Hello"), s); !errors.Is(err, domain.ErrMalformedInput) {
			t.Fatalf("len %d: want ErrMalformedInput, got %v", len(s), err)
		}
	}
}
