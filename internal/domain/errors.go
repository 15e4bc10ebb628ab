package domain

import "errors"

var (
	// ErrIdentityNotFound is returned when no identity is registered under a NIF.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrIdentityAlreadyExists is returned when registering a NIF that is taken.
	ErrIdentityAlreadyExists = errors.New("identity already exists")

	// ErrKeysNotFound is returned when an identity has no key pair yet.
	ErrKeysNotFound = errors.New("keys not found")

	// ErrKeysAlreadyExist is returned when generating keys for an identity that
	// already holds a key pair.
	ErrKeysAlreadyExist = errors.New("keys already generated")

	// ErrDecryption is returned when a sealed private key cannot be opened
	// under the master secret.
	ErrDecryption = errors.New("private key decryption failed")

	// ErrKeyFormat is returned when key bytes do not parse as an RSA key in
	// the expected encoding.
	ErrKeyFormat = errors.New("malformed key encoding")

	// ErrMalformedInput is returned for caller input that cannot be decoded,
	// such as bad base64 or a signature of the wrong length.
	ErrMalformedInput = errors.New("malformed input")

	// ErrCryptoBackend is returned when an underlying primitive fails.
	ErrCryptoBackend = errors.New("crypto backend failure")
)

// ErrorKind classifies an error for callers that branch on outcome.
type ErrorKind int

// Error kinds, one per sentinel plus the catch-alls.
const (
	KindNone                  ErrorKind = iota // nil error
	KindIdentityNotFound                       // ErrIdentityNotFound
	KindIdentityAlreadyExists                  // ErrIdentityAlreadyExists
	KindKeysNotFound                           // ErrKeysNotFound
	KindKeysAlreadyExist                       // ErrKeysAlreadyExist
	KindDecryption                             // ErrDecryption
	KindKeyFormat                              // ErrKeyFormat
	KindMalformedInput                         // ErrMalformedInput
	KindCryptoBackend                          // ErrCryptoBackend
	KindInternal                               // any other error
)

var kindNames = map[ErrorKind]string{
	KindNone:                  "NONE",
	KindIdentityNotFound:      "IDENTITY_NOT_FOUND",
	KindIdentityAlreadyExists: "IDENTITY_ALREADY_EXISTS",
	KindKeysNotFound:          "KEYS_NOT_FOUND",
	KindKeysAlreadyExist:      "KEYS_ALREADY_EXIST",
	KindDecryption:            "DECRYPTION_ERROR",
	KindKeyFormat:             "KEY_FORMAT_ERROR",
	KindMalformedInput:        "MALFORMED_INPUT",
	KindCryptoBackend:         "CRYPTO_BACKEND_ERROR",
	KindInternal:              "INTERNAL",
}

// String returns the wire code of the kind.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindInternal]
}

// ParseErrorKind maps a wire code back to its kind. Unknown codes map to
// KindInternal.
func ParseErrorKind(code string) ErrorKind {
	for k, s := range kindNames {
		if s == code {
			return k
		}
	}
	return KindInternal
}

// Sentinel returns the sentinel error of the kind, or nil for KindNone and
// KindInternal.
func (k ErrorKind) Sentinel() error {
	for _, p := range kindSentinels {
		if p.kind == k {
			return p.err
		}
	}
	return nil
}

// Order matters: the first sentinel found in the chain decides the kind.
var kindSentinels = []struct {
	err  error
	kind ErrorKind
}{
	{ErrIdentityNotFound, KindIdentityNotFound},
	{ErrIdentityAlreadyExists, KindIdentityAlreadyExists},
	{ErrKeysNotFound, KindKeysNotFound},
	{ErrKeysAlreadyExist, KindKeysAlreadyExist},
	{ErrMalformedInput, KindMalformedInput},
	{ErrDecryption, KindDecryption},
	{ErrKeyFormat, KindKeyFormat},
	{ErrCryptoBackend, KindCryptoBackend},
}

// KindOf classifies err by the domain sentinel it wraps.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, p := range kindSentinels {
		if errors.Is(err, p.err) {
			return p.kind
		}
	}
	return KindInternal
}
