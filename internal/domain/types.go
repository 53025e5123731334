package domain

import "crypto/ed25519"

// Ed25519Public is a signing public key.
type Ed25519Public [32]byte

func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is a signing private key (ed25519.PrivateKey layout).
type Ed25519Private [64]byte

func (k Ed25519Private) Slice() []byte { return k[:] }

// MachineIdentity is the device-bound identity derived from the local
// wallet key. It authenticates API requests in place of a password and
// lives only for the duration of one command invocation; the config file
// persists its public-key fingerprint, never the identity itself.
type MachineIdentity struct {
	DeviceID string
	Pub      Ed25519Public
	Priv     Ed25519Private
}

// PublicKeyFingerprint returns the stable byte encoding of the public key.
// It is deterministic across invocations for the same wallet.
func (id MachineIdentity) PublicKeyFingerprint() []byte {
	return id.Pub.Slice()
}

// Sign signs msg with the wallet key.
func (id MachineIdentity) Sign(msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(id.Priv[:]), msg)
}

// AccountSet is the ordered list of usernames the account service reports
// as bound to one machine identity. Service order is display order;
// interactive selection is 1-based over it.
type AccountSet []string

// Contains reports whether name is in the set. Matching is exact and
// case-sensitive against the server-reported names.
func (s AccountSet) Contains(name string) bool {
	for _, u := range s {
		if u == name {
			return true
		}
	}
	return false
}

// ActiveSession is the persisted (username, pubkey) pair designating the
// currently logged-in account. At most one exists at a time.
type ActiveSession struct {
	Username          string
	MachineAuthPubKey string // base64 of the public key bytes
}
