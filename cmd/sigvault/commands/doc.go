// Package commands defines the sigvault CLI.
//
// Commands
//
//   - serve          Run the HTTP server
//   - user create    Register an identity
//   - user show      Print an identity
//   - user delete    Remove an identity and its keys
//   - keys generate  Issue the key pair of an identity
//   - keys show      Print the public key and fingerprint of an identity
//   - sign           Sign a document with an identity's key
//   - verify         Verify a signature against an identity's key
//   - secret         Print a fresh master secret
//
// # Implementation
//
// The root command loads the configuration and sets the log level before any
// subcommand runs. Commands that operate on identities open an app.App, which
// talks to a remote server when --server is set and to locally wired services
// otherwise.
package commands
