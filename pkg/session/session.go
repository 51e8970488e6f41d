// Package session holds the state of one spell-checking client: the
// dictionary handle and the custom words.
package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/praetorian-inc/scribe/pkg/checker"
	"github.com/praetorian-inc/scribe/pkg/dictionary"
	"github.com/praetorian-inc/scribe/pkg/store"
	"github.com/praetorian-inc/scribe/pkg/types"
)

// ErrNotInitialized is returned by Check and Suggest before Init.
var ErrNotInitialized = checker.ErrNotInitialized

// Opener starts a dictionary.
type Opener func(dictionary.Config) (dictionary.Dictionary, error)

// Session guards a dictionary and a custom-word set.
//
// Check and Suggest hold the read lock for one call, so they run
// concurrently with each other; Init and AddWord hold the write lock.
type Session struct {
	mu       sync.RWMutex
	dict     dictionary.Dictionary
	custom   *types.WordSet
	store    store.Store
	excluder checker.Excluder
	open     Opener
	defaults dictionary.Config
	logger   DebugLogger
}

// Option configures a Session.
type Option func(*Session)

// WithStore persists words added with AddWord and loads stored words on
// Init.
func WithStore(s store.Store) Option {
	return func(sess *Session) {
		sess.store = s
	}
}

// WithExcluder skips words inside the regions e reports.
func WithExcluder(e checker.Excluder) Option {
	return func(sess *Session) {
		sess.excluder = e
	}
}

// WithOpener replaces dictionary.Open.
func WithOpener(open Opener) Option {
	return func(sess *Session) {
		sess.open = open
	}
}

// WithDefaults supplies the dictionary settings an InitRequest leaves
// empty. Paths are taken only when the request names neither file.
func WithDefaults(cfg dictionary.Config) Option {
	return func(sess *Session) {
		sess.defaults = cfg
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger DebugLogger) Option {
	return func(sess *Session) {
		if logger != nil {
			sess.logger = logger
		}
	}
}

// New creates an uninitialized session.
func New(opts ...Option) *Session {
	s := &Session{
		custom: types.NewWordSet(),
		open:   dictionary.Open,
		logger: NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init opens the dictionary described by req and replaces the custom
// words with req.CustomWords followed by any stored words. A previous
// dictionary is closed. On error the session is left unchanged.
func (s *Session) Init(req InitRequest) error {
	cfg := s.dictionaryConfig(req)
	s.logger.Log("Init starting: backend=%s aff=%s dic=%s", cfg.Backend, cfg.AffPath, cfg.DicPath)

	// Open outside the lock; starting an engine can be slow.
	dict, err := s.open(cfg)
	if err != nil {
		s.logger.Log("dictionary open failed: %v", err)
		return fmt.Errorf("opening dictionary: %w", err)
	}

	custom := types.NewWordSet(req.CustomWords...)
	if s.store != nil {
		stored, err := s.store.Words()
		if err != nil {
			dict.Close()
			return fmt.Errorf("loading custom words: %w", err)
		}
		for _, w := range stored {
			custom.Add(w)
		}
	}

	s.mu.Lock()
	old := s.dict
	s.dict = dict
	s.custom = custom
	s.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			s.logger.Log("closing previous dictionary: %v", err)
		}
	}

	s.logger.Log("Init complete with %d custom words", custom.Len())
	return nil
}

func (s *Session) dictionaryConfig(req InitRequest) dictionary.Config {
	cfg := dictionary.Config{
		Backend:    req.Backend,
		AffPath:    req.AffPath,
		DicPath:    req.DicPath,
		Language:   req.Language,
		SearchDirs: req.SearchDirs,
	}
	if cfg.AffPath == "" && cfg.DicPath == "" {
		cfg.AffPath, cfg.DicPath = s.defaults.AffPath, s.defaults.DicPath
	}
	if cfg.Backend == "" {
		cfg.Backend = s.defaults.Backend
	}
	if cfg.Language == "" {
		cfg.Language = s.defaults.Language
	}
	if cfg.SearchDirs == nil {
		cfg.SearchDirs = s.defaults.SearchDirs
	}
	return cfg
}

// Initialized reports whether Init has succeeded.
func (s *Session) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict != nil
}

// Check returns the misspelled words of text in order, with UTF-16
// positions.
func (s *Session) Check(text string) ([]types.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dict == nil {
		return nil, ErrNotInitialized
	}
	var opts []checker.Option
	if s.excluder != nil {
		opts = append(opts, checker.WithExcluder(s.excluder))
	}
	return checker.Scan(text, s.custom, s.dict, opts...)
}

// CheckBatch checks each document. A document that fails to check is
// skipped and logged.
func (s *Session) CheckBatch(docs []Document) (*BatchResult, error) {
	if !s.Initialized() {
		return nil, ErrNotInitialized
	}

	result := &BatchResult{Results: []DocumentResult{}}
	for _, doc := range docs {
		matches, err := s.Check(doc.Content)
		if err != nil {
			s.logger.Log("check %s failed: %v", doc.Source, err)
			continue
		}
		result.Results = append(result.Results, DocumentResult{
			Source:  doc.Source,
			Matches: matches,
		})
		result.Total += len(matches)
	}
	return result, nil
}

// Suggest returns the dictionary's corrections for word.
func (s *Session) Suggest(word string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dict == nil {
		return nil, ErrNotInitialized
	}
	suggestions, err := s.dict.Suggest(word)
	if err != nil {
		return nil, fmt.Errorf("suggesting for %q: %w", word, err)
	}
	s.logger.Log("Suggestions for %q: %v", word, suggestions)
	return suggestions, nil
}

// AddWord adds word to the custom words and, if configured, the store.
// Words may be added before Init; Init then replaces them.
func (s *Session) AddWord(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Add(word); err != nil {
			return fmt.Errorf("storing custom word: %w", err)
		}
	} else if err := validWord(word); err != nil {
		return err
	}
	s.custom.Add(word)
	return nil
}

// Words returns the custom words in insertion order.
func (s *Session) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := s.custom.Words()
	if words == nil {
		words = []string{}
	}
	return words
}

// Close releases the dictionary and the store.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	if s.dict != nil {
		firstErr = s.dict.Close()
		s.dict = nil
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.store = nil
	}
	return firstErr
}

func validWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return store.ErrEmptyWord
	}
	return nil
}
