//go:build wasm

package store

import "fmt"

// New creates a Store for browser builds. There is no filesystem, so only
// MemoryPath is accepted; the page keeps words across reloads itself.
func New(cfg Config) (Store, error) {
	if cfg.Path != MemoryPath {
		return nil, fmt.Errorf("store path %q unavailable in the browser, use %s", cfg.Path, MemoryPath)
	}
	return NewMemory(), nil
}
