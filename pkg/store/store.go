// Package store persists the custom words a user has added.
package store

import (
	"errors"
	"strings"
)

// MemoryPath selects the in-memory store.
const MemoryPath = ":memory:"

// ErrEmptyWord is returned when adding an empty or whitespace-only word.
var ErrEmptyWord = errors.New("custom word is empty")

// Store provides persistence for custom words.
// This interface abstracts the underlying storage implementation.
// Words keep the order they were first added in; adding a word twice is
// a no-op.
type Store interface {
	// Add stores a custom word.
	Add(word string) error

	// Words retrieves all custom words in insertion order.
	Words() ([]string, error)

	// Contains checks if a word has been added.
	Contains(word string) (bool, error)

	// Close closes the underlying database.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for a store that lives as long as the process.
	Path string
}

func validate(word string) error {
	if strings.TrimSpace(word) == "" {
		return ErrEmptyWord
	}
	return nil
}
