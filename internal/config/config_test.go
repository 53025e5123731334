package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pickaxe/internal/config"
)

func newStore(t *testing.T) (*config.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.Filename)
	return config.NewStore(path), path
}

func TestLoad_MissingFile_Empty(t *testing.T) {
	store, _ := newStore(t)

	snap, err := store.Load()
	require.NoError(t, err)

	_, ok := snap.Username()
	require.False(t, ok)
}

func TestCommit_WritesBothSessionKeys(t *testing.T) {
	store, _ := newStore(t)

	err := store.Commit(
		config.Patch{Key: config.KeyUsername, Value: "alice"},
		config.Patch{Key: config.KeyMiningAuthPubKey, Value: "cHVi"},
	)
	require.NoError(t, err)

	snap, err := store.Load()
	require.NoError(t, err)

	u, ok := snap.Username()
	require.True(t, ok)
	require.Equal(t, "alice", u)

	pk, ok := snap.MachineAuthPubKey()
	require.True(t, ok)
	require.Equal(t, "cHVi", pk)
}

func TestCommit_PreservesUnrelatedKeys(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Commit(config.Patch{Key: "mining_rate", Value: "fast"}))
	require.NoError(t, store.Commit(config.Patch{Key: config.KeyUsername, Value: "bob"}))

	snap, err := store.Load()
	require.NoError(t, err)

	v, ok := snap.Get("mining_rate")
	require.True(t, ok)
	require.Equal(t, "fast", v)
}

func TestCommit_Idempotent(t *testing.T) {
	store, path := newStore(t)

	patches := []config.Patch{
		{Key: config.KeyUsername, Value: "alice"},
		{Key: config.KeyMiningAuthPubKey, Value: "cHVi"},
	}
	require.NoError(t, store.Commit(patches...))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Commit(patches...))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSession_RequiresBothFields(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Commit(config.Patch{Key: config.KeyUsername, Value: "alice"}))
	snap, err := store.Load()
	require.NoError(t, err)
	_, ok := snap.Session()
	require.False(t, ok)

	require.NoError(t, store.Commit(config.Patch{Key: config.KeyMiningAuthPubKey, Value: "cHVi"}))
	snap, err = store.Load()
	require.NoError(t, err)
	sess, ok := snap.Session()
	require.True(t, ok)
	require.Equal(t, "alice", sess.Username)
	require.Equal(t, "cHVi", sess.MachineAuthPubKey)
}

func TestCommit_LeavesNoTempFile(t *testing.T) {
	store, path := newStore(t)

	require.NoError(t, store.Commit(config.Patch{Key: config.KeyUsername, Value: "alice"}))

	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}
