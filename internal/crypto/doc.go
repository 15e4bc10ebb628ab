// Package crypto exposes the primitives used by sigvault.
//
// Contents
//
//   - Envelope sealing of private-key bytes under the master key (Seal, Open)
//   - RSA-2048 key generation and DER parsing (GenerateKeyPair,
//     ParsePrivateKey, ParsePublicKey)
//   - RSASSA-PKCS1-v1_5 over SHA-256 (SignRSA, VerifyRSA)
//   - Master secret parsing and generation (ParseMasterSecret,
//     GenerateMasterSecret)
//   - Base64 boundary encoding (B64, FromB64, EncodeKey, DecodeKey)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Failures are wrapped around the sentinels in internal/domain so callers can
// classify them with domain.KindOf. Sealed blobs are versioned; Open rejects
// any version it does not know.
package crypto
