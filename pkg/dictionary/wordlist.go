package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/f1monkey/spellchecker"
)

// DefaultSuggestLimit bounds the suggestions returned by Wordlist.Suggest.
const DefaultSuggestLimit = 10

// Wordlist is an in-process engine over a flat word list. It does not
// expand hunspell affix rules; each listed stem is accepted as written.
type Wordlist struct {
	sc    *spellchecker.Spellchecker
	limit int

	mu     sync.RWMutex
	closed bool
}

// LoadWordlist reads a hunspell .dic file or a plain one-word-per-line list.
func LoadWordlist(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open word list: %w", err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	return NewWordlist(words)
}

// NewWordlist builds an engine accepting exactly words.
func NewWordlist(words []string) (*Wordlist, error) {
	sc, err := spellchecker.New(alphabet(words), spellchecker.WithMaxErrors(2))
	if err != nil {
		return nil, fmt.Errorf("dictionary: spellchecker: %w", err)
	}
	sc.Add(words...)
	return &Wordlist{sc: sc, limit: DefaultSuggestLimit}, nil
}

// ReadWords parses word list content. A leading hunspell entry count is
// skipped, "/FLAGS" suffixes and morphological fields are stripped, and
// blank or '#' comment lines are ignored.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			line = strings.TrimPrefix(line, "\ufeff")
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexAny(line, " \t"); i != -1 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, '/'); i != -1 {
			line = line[:i]
		}
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Check accepts a listed word, or a capitalized or upper-case form of a
// listed lower-case word.
func (w *Wordlist) Check(word string) (bool, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return false, ErrClosed
	}
	return w.accepts(word), nil
}

func (w *Wordlist) accepts(word string) bool {
	if w.sc.IsCorrect(word) {
		return true
	}
	lower := strings.ToLower(word)
	return lower != word && w.sc.IsCorrect(lower)
}

// Suggest returns up to the configured limit of close listed words.
func (w *Wordlist) Suggest(word string) ([]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return nil, ErrClosed
	}
	if w.accepts(word) {
		return []string{}, nil
	}
	suggestions, err := w.sc.Suggest(strings.ToLower(word), w.limit)
	if err != nil {
		// Words too far from every entry have no suggestions.
		return []string{}, nil
	}
	return suggestions, nil
}

// Close releases the engine.
func (w *Wordlist) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

// alphabet collects the distinct lower-case runes of words.
func alphabet(words []string) string {
	seen := make(map[rune]struct{})
	for _, word := range words {
		for _, r := range word {
			seen[unicode.ToLower(r)] = struct{}{}
		}
	}
	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	if len(runes) == 0 {
		return "abcdefghijklmnopqrstuvwxyz'"
	}
	return string(runes)
}
