//go:build !wasm

package store

import "fmt"

// New creates a new Store.
// For ":memory:" paths, returns MemoryStore; otherwise a SQLite database.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if cfg.Path == MemoryPath {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}
