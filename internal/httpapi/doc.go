// Package httpapi serves the sigvault HTTP interface.
//
// Routes
//
//   - POST   /api/user/create                   register an identity
//   - GET    /api/user/{nif}                    look an identity up
//   - DELETE /api/user/{nif}                    remove an identity and its keys
//   - POST   /api/userkeys/generate-keys/{nif}  issue the identity's key pair
//   - GET    /api/userkeys/{nif}                public key and fingerprint
//   - POST   /api/sign                          sign a base64 document
//   - POST   /api/signature/verify              verify a base64 signature
//   - GET    /healthz                           liveness
//   - GET    /metrics                           Prometheus exposition
//
// Errors are JSON objects {"error": "...", "code": "..."} where code is the
// domain.ErrorKind wire name, or RATE_LIMITED. Every request is access-logged,
// counted and timed, and subject to a per-client token bucket.
package httpapi
