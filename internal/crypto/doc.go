// Package crypto exposes the minimal primitives used by pickaxe.
//
// Contents
//
//   - Machine identity generation: an Ed25519 signing key pair plus a
//     device UUID (NewMachineIdentity)
//   - Short public-key fingerprints for display (Fingerprint)
//   - Base64 helpers for wire and config encoding (B64, FromB64)
//
// All key material uses the fixed-size array types defined in
// internal/domain to avoid accidental reallocation of secrets.
package crypto
