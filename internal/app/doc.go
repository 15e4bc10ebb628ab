// Package app wires sigvault's dependencies for the CLI and the server.
//
// LoadConfig merges defaults, the YAML config file, an optional .env file and
// SIGVAULT_* environment variables. NewWire builds the store, master key and
// services from the result; New picks between that local wiring and a remote
// server client for the CLI.
package app
