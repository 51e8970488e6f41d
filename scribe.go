// Package scribe provides spell checking for text editors.
//
// A Checker reports misspelled words with positions in UTF-16 code units,
// so an editor that indexes its buffer in 16-bit units can underline the
// word without converting offsets.
//
// # Basic Usage
//
// Create a checker with the system hunspell dictionary and check text:
//
//	checker, err := scribe.NewChecker()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer checker.Close()
//
//	matches, err := checker.Check("Helo wrold")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range matches {
//	    fmt.Printf("%s at %d (+%d)\n", m.Word, m.Index, m.Length)
//	}
//
// # Custom Words
//
// Words added to a checker are accepted by every later check. With a
// store they survive restarts:
//
//	checker, err := scribe.NewChecker(
//	    scribe.WithStore("words.db"),
//	    scribe.WithCustomWords("kubectl", "fyne"),
//	)
package scribe

import (
	"fmt"
	"os"

	"github.com/praetorian-inc/scribe/pkg/dictionary"
	"github.com/praetorian-inc/scribe/pkg/ignore"
	"github.com/praetorian-inc/scribe/pkg/rule"
	"github.com/praetorian-inc/scribe/pkg/session"
	"github.com/praetorian-inc/scribe/pkg/store"
	"github.com/praetorian-inc/scribe/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/scribe" without subpackages.
type (
	// Match is a misspelled word with its UTF-16 position.
	Match = types.Match

	// Location adds line and column to a Match.
	Location = types.Location

	// Rule describes a region of text that is never checked.
	Rule = types.Rule

	// Suggestion is a correction with its edit distance.
	Suggestion = dictionary.Suggestion

	// DebugLogger receives diagnostic messages.
	DebugLogger = session.DebugLogger
)

// ErrNotInitialized is returned when no dictionary is loaded.
var ErrNotInitialized = session.ErrNotInitialized

// Checker finds misspelled words. It is safe for concurrent use.
type Checker struct {
	sess   *session.Session
	rules  []*Rule
	config *checkerConfig
}

// checkerConfig holds checker configuration.
type checkerConfig struct {
	dictionary   dictionary.Config
	wordlist     string
	customWords  []string
	storePath    string
	ignoreRules  []*Rule
	noIgnore     bool
	suggestLimit int
	logger       DebugLogger
}

// Option configures a Checker.
type Option func(*checkerConfig)

// WithDictionary uses an explicit hunspell affix and word file pair.
func WithDictionary(aff, dic string) Option {
	return func(c *checkerConfig) {
		c.dictionary.AffPath = aff
		c.dictionary.DicPath = dic
	}
}

// WithLanguage probes the search directories for <lang>.aff and
// <lang>.dic. Default is "en_US".
func WithLanguage(lang string) Option {
	return func(c *checkerConfig) {
		c.dictionary.Language = lang
	}
}

// WithSearchDirs replaces the directories probed for dictionaries.
func WithSearchDirs(dirs ...string) Option {
	return func(c *checkerConfig) {
		c.dictionary.SearchDirs = dirs
	}
}

// WithWordlist uses the in-process engine over a plain word file instead
// of hunspell. The file holds one word per line; a .dic file works too.
func WithWordlist(path string) Option {
	return func(c *checkerConfig) {
		c.wordlist = path
	}
}

// WithCustomWords adds words that are always accepted.
func WithCustomWords(words ...string) Option {
	return func(c *checkerConfig) {
		c.customWords = append(c.customWords, words...)
	}
}

// WithStore persists custom words in a SQLite database at path.
func WithStore(path string) Option {
	return func(c *checkerConfig) {
		c.storePath = path
	}
}

// WithIgnoreRules uses rules instead of the builtin ignore rules.
func WithIgnoreRules(rules []*Rule) Option {
	return func(c *checkerConfig) {
		c.ignoreRules = rules
	}
}

// WithoutIgnoreRules checks every word, including those in URLs and code.
func WithoutIgnoreRules() Option {
	return func(c *checkerConfig) {
		c.noIgnore = true
	}
}

// WithSuggestLimit caps the suggestions returned for a word.
// Default is 5; zero keeps every suggestion.
func WithSuggestLimit(n int) Option {
	return func(c *checkerConfig) {
		c.suggestLimit = n
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger DebugLogger) Option {
	return func(c *checkerConfig) {
		c.logger = logger
	}
}

// NewChecker creates a Checker with the given options.
//
// By default, the checker:
//   - Runs hunspell with the first en_US dictionary found on the system
//   - Skips URLs, email addresses and code using the builtin ignore rules
//   - Keeps custom words in memory only
func NewChecker(opts ...Option) (*Checker, error) {
	config := &checkerConfig{suggestLimit: 5}
	for _, opt := range opts {
		opt(config)
	}

	var rules []*Rule
	if !config.noIgnore {
		rules = config.ignoreRules
		if rules == nil {
			builtin, err := LoadBuiltinRules()
			if err != nil {
				return nil, fmt.Errorf("loading builtin rules: %w", err)
			}
			rules = builtin
		}
	}

	sessOpts := []session.Option{session.WithLogger(config.logger)}
	if len(rules) > 0 {
		m, err := ignore.New(rules, ignore.DefaultTimeout)
		if err != nil {
			return nil, fmt.Errorf("compiling ignore rules: %w", err)
		}
		sessOpts = append(sessOpts, session.WithExcluder(m))
	}
	if config.wordlist != "" {
		path := config.wordlist
		sessOpts = append(sessOpts, session.WithOpener(func(dictionary.Config) (dictionary.Dictionary, error) {
			return dictionary.LoadWordlist(path)
		}))
	}
	if config.storePath != "" {
		s, err := store.New(store.Config{Path: config.storePath})
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		sessOpts = append(sessOpts, session.WithStore(s))
	}

	sess := session.New(sessOpts...)
	err := sess.Init(session.InitRequest{
		AffPath:     config.dictionary.AffPath,
		DicPath:     config.dictionary.DicPath,
		Language:    config.dictionary.Language,
		SearchDirs:  config.dictionary.SearchDirs,
		CustomWords: config.customWords,
	})
	if err != nil {
		sess.Close()
		return nil, err
	}

	return &Checker{sess: sess, rules: rules, config: config}, nil
}

// Check returns the misspelled words of text in order of appearance.
func (c *Checker) Check(text string) ([]Match, error) {
	return c.sess.Check(text)
}

// Locate checks text and attaches 1-based line and column positions.
func (c *Checker) Locate(text string) ([]Location, error) {
	matches, err := c.sess.Check(text)
	if err != nil {
		return nil, err
	}
	return types.LocateMatches(text, matches), nil
}

// CheckFile reads and checks a file.
func (c *Checker) CheckFile(path string) ([]Location, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return c.Locate(string(content))
}

// Suggest returns corrections for word, closest first as ranked by the
// engine, with their edit distances.
func (c *Checker) Suggest(word string) ([]Suggestion, error) {
	candidates, err := c.sess.Suggest(word)
	if err != nil {
		return nil, err
	}
	if c.config.suggestLimit > 0 && len(candidates) > c.config.suggestLimit {
		candidates = candidates[:c.config.suggestLimit]
	}
	return dictionary.WithDistances(word, candidates), nil
}

// AddWord accepts word in every later check.
func (c *Checker) AddWord(word string) error {
	return c.sess.AddWord(word)
}

// Words returns the custom words in the order they were added.
func (c *Checker) Words() []string {
	return c.sess.Words()
}

// Rules returns a copy of the active ignore rules.
func (c *Checker) Rules() []*Rule {
	rules := make([]*Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

// Close releases checker resources.
// Always call Close when done with the checker.
func (c *Checker) Close() error {
	return c.sess.Close()
}

// LoadRulesFromFile loads ignore rules from a YAML file.
// Use this with WithIgnoreRules to replace the builtin rules.
func LoadRulesFromFile(path string) ([]*Rule, error) {
	return rule.NewLoader().LoadRulesFile(path)
}

// LoadBuiltinRules returns all builtin ignore rules.
func LoadBuiltinRules() ([]*Rule, error) {
	return rule.NewLoader().LoadBuiltinRules()
}
