package store

import (
	"sync"

	"github.com/praetorian-inc/scribe/pkg/types"
)

// MemoryStore implements Store using in-memory data structures.
// Its words are lost when the process exits.
type MemoryStore struct {
	mu    sync.RWMutex
	words *types.WordSet
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{words: types.NewWordSet()}
}

// Add stores a custom word.
func (m *MemoryStore) Add(word string) error {
	if err := validate(word); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.words.Add(word)
	return nil
}

// Words retrieves all custom words in insertion order.
func (m *MemoryStore) Words() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	words := m.words.Words()
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// Contains checks if a word has been added.
func (m *MemoryStore) Contains(word string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.words.Contains(word), nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
