package types

import "strings"

// NIF is the stable external identifier of a registered identity.
type NIF string

// String returns the string form of the NIF.
func (n NIF) String() string { return string(n) }

// Normalize trims surrounding whitespace.
func (n NIF) Normalize() NIF { return NIF(strings.TrimSpace(string(n))) }

// Empty reports whether the NIF carries no identifier after trimming.
func (n NIF) Empty() bool { return n.Normalize() == "" }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
