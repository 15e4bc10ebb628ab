// internal/domain/errors_test.go
package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"sigvault/internal/domain"
)

func TestKindOf_WrappedSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want domain.ErrorKind
	}{
		{nil, domain.KindNone},
		{domain.ErrIdentityNotFound, domain.KindIdentityNotFound},
		{fmt.Errorf("resolve %q: %w", "12345678A", domain.ErrKeysNotFound), domain.KindKeysNotFound},
		{fmt.Errorf("generate: %w", domain.ErrKeysAlreadyExist), domain.KindKeysAlreadyExist},
		{fmt.Errorf("open: %w", domain.ErrDecryption), domain.KindDecryption},
		{fmt.Errorf("decode signature: %w", domain.ErrMalformedInput), domain.KindMalformedInput},
		{errors.New("disk on fire"), domain.KindInternal},
	}
	for _, c := range cases {
		if got := domain.KindOf(c.err); got != c.want {
			t.Fatalf("KindOf(%v) = %s, want %s", c.err, got, c.want)
		}
	}
}

func TestErrorKind_CodeRoundTrip(t *testing.T) {
	for _, k := range []domain.ErrorKind{
		domain.KindIdentityNotFound,
		domain.KindIdentityAlreadyExists,
		domain.KindKeysNotFound,
		domain.KindKeysAlreadyExist,
		domain.KindDecryption,
		domain.KindKeyFormat,
		domain.KindMalformedInput,
		domain.KindCryptoBackend,
	} {
		back := domain.ParseErrorKind(k.String())
		if back != k {
			t.Fatalf("ParseErrorKind(%q) = %s, want %s", k.String(), back, k)
		}
		if domain.KindOf(k.Sentinel()) != k {
			t.Fatalf("sentinel of %s does not classify back", k)
		}
	}
	if domain.ParseErrorKind("NOPE") != domain.KindInternal {
		t.Fatal("unknown code should map to KindInternal")
	}
}
