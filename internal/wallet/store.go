package wallet

import (
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"pickaxe/internal/domain"
)

// Filename is the wallet file name inside the pickaxe home directory.
const Filename = "wallet.json.enc"

// DefaultPath returns the well-known wallet location, ~/.pickaxe/wallet.json.enc.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pickaxe", Filename), nil
}

// FileStore stores the machine identity encrypted on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the file at path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Exists reports whether the wallet file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// SaveIdentity writes the encrypted identity to disk, creating the parent
// directory as needed. The write goes through a temp file then rename so a
// crash never leaves a truncated wallet behind.
func (s *FileStore) SaveIdentity(passphrase string, id domain.MachineIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	blob, err := encrypt(passphrase, raw)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// LoadIdentity reads and decrypts the identity.
func (s *FileStore) LoadIdentity(passphrase string) (domain.MachineIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.MachineIdentity{}, domain.ErrWalletMissing
		}
		return domain.MachineIdentity{}, err
	}
	raw, err := decrypt(passphrase, blob)
	if err != nil {
		return domain.MachineIdentity{}, err
	}
	var id domain.MachineIdentity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.MachineIdentity{}, err
	}
	return id, nil
}

// Compile-time assertion that FileStore implements domain.WalletStore.
var _ domain.WalletStore = (*FileStore)(nil)

// scrypt envelope (parameters fixed here)
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

type envelope struct {
	Salt []byte
	CT   []byte
}

func encrypt(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(envelope{Salt: salt, CT: ct})
}

func decrypt(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), env.Salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	return aead.Open(nil, nonce, env.CT, env.Salt)
}
