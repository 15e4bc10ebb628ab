// Package vault issues and guards the RSA key pair of each identity.
//
// GenerateKeyPair creates at most one key pair per identity and stores the
// private half sealed under the process master key. ResolveKeyPair, PrivateKey
// and PublicKey give the signing and verification services access to that
// material; decrypted private-key bytes never leave this package.
package vault
