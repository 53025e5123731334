package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"pickaxe/internal/domain"
)

// Well-known keys written by the login flow and read by every other
// command that authenticates against the account service.
const (
	KeyUsername         = "username"
	KeyMiningAuthPubKey = "mining_auth_pubkey"
)

// Filename is the config file name inside the pickaxe home directory.
const Filename = "config.json"

// DefaultPath returns the config location, ~/.pickaxe/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pickaxe", Filename), nil
}

// Store reads and writes the config file at a fixed path.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store { return &Store{path: path} }

// Snapshot is a read-only view of the config at one point in time.
type Snapshot struct {
	values map[string]string
}

// Get returns the value for key and whether it is set.
func (s Snapshot) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Username returns the bound account name, if any.
func (s Snapshot) Username() (string, bool) { return s.Get(KeyUsername) }

// MachineAuthPubKey returns the persisted base64 public key, if any.
func (s Snapshot) MachineAuthPubKey() (string, bool) { return s.Get(KeyMiningAuthPubKey) }

// Session returns the active session when both of its fields are present.
// The login flow writes them in one commit, so a half-set pair only ever
// means the file predates this tool or was edited by hand.
func (s Snapshot) Session() (domain.ActiveSession, bool) {
	u, okU := s.Get(KeyUsername)
	pk, okPK := s.Get(KeyMiningAuthPubKey)
	if !okU || !okPK {
		return domain.ActiveSession{}, false
	}
	return domain.ActiveSession{Username: u, MachineAuthPubKey: pk}, true
}

// Patch is one key update to apply on Commit.
type Patch struct {
	Key   string
	Value string
}

// Load reads the config file. A missing file yields an empty snapshot,
// not an error.
func (s *Store) Load() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{values: map[string]string{}}, nil
		}
		return Snapshot{}, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{values: values}, nil
}

// Commit reloads the file, applies all patches and flushes once. Unrelated
// keys written by other commands survive; either every patch is visible
// after the rename or none is.
func (s *Store) Commit(patches ...Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	for _, p := range patches {
		snap.values[p.Key] = p.Value
	}
	b, err := json.MarshalIndent(snap.values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
