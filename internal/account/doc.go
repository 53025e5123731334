// Package account is the typed HTTP client for the remote account service.
//
// Every request is signed with the machine identity: the client sends the
// device ID, the base64 public key, a timestamp and an Ed25519 signature
// over (method, path, timestamp, body digest). Transient transport
// failures are retried with exponential backoff inside the client; callers
// only ever see the typed provider errors from internal/domain.
package account
