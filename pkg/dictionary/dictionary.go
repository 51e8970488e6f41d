// Package dictionary provides the spelling engines behind a session: a
// hunspell subprocess and an in-process word-list engine.
package dictionary

import (
	"errors"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendHunspell = "hunspell"
	BackendWordlist = "wordlist"
)

// DefaultLanguage is the dictionary name probed in search directories.
const DefaultLanguage = "en_US"

var (
	// ErrDictionaryNotFound is returned when no complete .aff/.dic pair exists.
	ErrDictionaryNotFound = errors.New("failed to find dictionary files in any expected location")
	// ErrClosed is returned by a dictionary after Close.
	ErrClosed = errors.New("dictionary closed")
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown dictionary backend")
)

// Dictionary is a spelling engine.
type Dictionary interface {
	// Check reports whether word is a recognized spelling.
	Check(word string) (bool, error)
	// Suggest returns candidate corrections, best first.
	Suggest(word string) ([]string, error)
	// Close releases the engine.
	Close() error
}

// Config selects and locates a dictionary.
type Config struct {
	Backend    string   // "hunspell" (default) or "wordlist"
	AffPath    string   // explicit affix file
	DicPath    string   // explicit word file
	Language   string   // name probed in SearchDirs, default "en_US"
	SearchDirs []string // default DefaultSearchDirs
}

// Open resolves the dictionary files named by cfg and starts the backend.
func Open(cfg Config) (Dictionary, error) {
	aff, dic, err := Resolve(cfg.AffPath, cfg.DicPath, cfg.Language, cfg.SearchDirs)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case "", BackendHunspell:
		return NewHunspell(aff, dic)
	case BackendWordlist:
		return LoadWordlist(dic)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
