// internal/util/memzero/memzero_test.go
package memzero_test

import (
	"testing"

	"sigvault/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte("private key material")
	memzero.Zero(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
	memzero.Zero(nil)
}
