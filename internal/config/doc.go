// Package config persists pickaxe's key-value configuration file.
//
// The file is JSON at ~/.pickaxe/config.json. Reads go through Load, which
// returns an immutable Snapshot; writes go through Commit, which reloads
// the file, applies the given patches and flushes once via a temp file and
// rename. That ordering makes "reload before mutate, save once at the end"
// a property of the API rather than a convention: there is no way to write
// a stale in-memory view back to disk, and no intermediate state is
// observable by other readers.
package config
