package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"sigvault/internal/domain"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// FromB64 decodes standard padded base64. Surrounding whitespace is ignored.
// Failures wrap domain.ErrMalformedInput.
func FromB64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", domain.ErrMalformedInput, err)
	}
	return b, nil
}
