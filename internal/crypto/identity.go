package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/google/uuid"

	"pickaxe/internal/domain"
)

// NewMachineIdentity generates a fresh Ed25519 key pair and device ID.
func NewMachineIdentity() (domain.MachineIdentity, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return domain.MachineIdentity{}, err
	}
	id := domain.MachineIdentity{DeviceID: uuid.NewString()}
	copy(id.Pub[:], pub)
	copy(id.Priv[:], priv)
	return id, nil
}

// Verify verifies sig over msg with pub.
func Verify(pub domain.Ed25519Public, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
