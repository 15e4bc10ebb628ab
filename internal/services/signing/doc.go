// Package signing produces RSA signatures with an identity's stored key.
package signing
