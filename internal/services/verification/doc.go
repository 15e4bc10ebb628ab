// Package verification checks RSA signatures against an identity's stored
// public key.
//
// A well-formed signature that does not match is a normal false result; only
// undecodable or wrongly sized input is an error.
package verification
