// Package checker finds misspelled words in text and reports their
// positions in UTF-16 code units.
package checker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/praetorian-inc/scribe/pkg/offset"
	"github.com/praetorian-inc/scribe/pkg/tokenizer"
	"github.com/praetorian-inc/scribe/pkg/types"
)

// ErrNotInitialized is returned when a scan runs without a dictionary.
var ErrNotInitialized = errors.New("spell checker not initialized")

// Dictionary answers whether a spelling is recognized.
type Dictionary interface {
	Check(word string) (bool, error)
}

// WordSet is the set of custom words that are always accepted.
type WordSet interface {
	Contains(word string) bool
}

// Excluder reports byte ranges of text whose words must not be checked.
// Ranges are sorted by Start.
type Excluder interface {
	Exclusions(text string) []types.OffsetSpan
}

// Option configures a scan.
type Option func(*config)

type config struct {
	excluder Excluder
}

// WithExcluder skips words that overlap any range reported by e.
func WithExcluder(e Excluder) Option {
	return func(c *config) {
		c.excluder = e
	}
}

// Scan returns the words of text that are neither custom words nor known
// to dict, in the order they occur.
//
// Any dictionary error aborts the scan; no partial list is returned.
// Text without misspellings yields an empty, non-nil slice.
func Scan(text string, custom WordSet, dict Dictionary, opts ...Option) ([]types.Match, error) {
	if dict == nil {
		return nil, ErrNotInitialized
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var excluded []types.OffsetSpan
	if cfg.excluder != nil {
		excluded = cfg.excluder.Exclusions(text)
	}

	matches := []types.Match{}
	var cursor offset.Cursor
	next := 0
	for span := range tokenizer.Scan(text) {
		// Skipped words still move the cursor so later indices stay exact.
		index := cursor.Advance(text, span.Start)

		for next < len(excluded) && excluded[next].End <= span.Start {
			next++
		}
		if next < len(excluded) && excluded[next].Overlaps(span.Offset()) {
			continue
		}

		ok, err := Accepted(span.Text, custom, dict)
		if err != nil {
			return nil, err
		}
		if ok {
			continue
		}

		matches = append(matches, types.Match{
			Word:   span.Text,
			Index:  index,
			Length: offset.UTF16Len(span.Text),
		})
	}
	return matches, nil
}

// Accepted reports whether word is spelled correctly.
//
// Custom words match exactly and are accepted without consulting dict.
// Otherwise the word is looked up as written and, if it contains U+2019,
// again with each U+2019 replaced by an ASCII apostrophe.
func Accepted(word string, custom WordSet, dict Dictionary) (bool, error) {
	if custom != nil && custom.Contains(word) {
		return true, nil
	}
	if dict == nil {
		return false, ErrNotInitialized
	}

	normalized := NormalizeApostrophes(word)

	ok, err := dict.Check(word)
	if err != nil {
		return false, fmt.Errorf("checking %q: %w", word, err)
	}
	if ok || normalized == word {
		return ok, nil
	}
	ok, err = dict.Check(normalized)
	if err != nil {
		return false, fmt.Errorf("checking %q: %w", normalized, err)
	}
	return ok, nil
}

// NormalizeApostrophes replaces every U+2019 with an ASCII apostrophe.
func NormalizeApostrophes(word string) string {
	return strings.ReplaceAll(word, "’", "'")
}
