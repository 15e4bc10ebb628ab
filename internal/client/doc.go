// Package client provides an HTTP implementation of domain.SignatureGateway
// for talking to a remote sigvault server.
//
// Error responses are mapped back onto the domain sentinel errors by their
// code, so callers can use errors.Is the same way they would against local
// services. Non-2xx statuses without a recognised code are returned with the
// HTTP method, path and status text.
package client
