package scribe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordlist(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	words := "hello\nworld\nthis\nis\nthe\nsee\nfor\ndocs\n"
	require.NoError(t, os.WriteFile(path, []byte(words), 0644))
	return path
}

func TestNewChecker_Wordlist(t *testing.T) {
	checker, err := NewChecker(WithWordlist(writeWordlist(t)), WithCustomWords("fyne"))
	require.NoError(t, err)
	defer checker.Close()

	matches, err := checker.Check("Helo wrold, this is fyne.")
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "Helo", Index: 0, Length: 4},
		{Word: "wrold", Index: 5, Length: 5},
	}, matches)

	assert.NotEmpty(t, checker.Rules(), "builtin ignore rules should be active")
}

func TestNewChecker_MissingDictionary(t *testing.T) {
	_, err := NewChecker(WithSearchDirs(t.TempDir()))
	assert.Error(t, err)
}

func TestChecker_IgnoreRules(t *testing.T) {
	wordlist := writeWordlist(t)
	text := "see https://exmple.org/docs for docs"

	checker, err := NewChecker(WithWordlist(wordlist))
	require.NoError(t, err)
	defer checker.Close()

	matches, err := checker.Check(text)
	require.NoError(t, err)
	assert.Empty(t, matches)

	unfiltered, err := NewChecker(WithWordlist(wordlist), WithoutIgnoreRules())
	require.NoError(t, err)
	defer unfiltered.Close()

	matches, err = unfiltered.Check(text)
	require.NoError(t, err)
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.Word
	}
	assert.Contains(t, words, "exmple")
	assert.Empty(t, unfiltered.Rules())
}

func TestChecker_AddWordWithStore(t *testing.T) {
	wordlist := writeWordlist(t)
	dbPath := filepath.Join(t.TempDir(), "words.db")

	checker, err := NewChecker(WithWordlist(wordlist), WithStore(dbPath))
	require.NoError(t, err)

	require.NoError(t, checker.AddWord("wrold"))
	matches, err := checker.Check("hello wrold")
	require.NoError(t, err)
	assert.Empty(t, matches)
	require.NoError(t, checker.Close())

	// Stored words are loaded by a new checker.
	reopened, err := NewChecker(WithWordlist(wordlist), WithStore(dbPath))
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []string{"wrold"}, reopened.Words())
	matches, err = reopened.Check("hello wrold")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestChecker_Locate(t *testing.T) {
	checker, err := NewChecker(WithWordlist(writeWordlist(t)))
	require.NoError(t, err)
	defer checker.Close()

	locs, err := checker.Locate("hello\nthe wrold")
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "wrold", locs[0].Match.Word)
	assert.Equal(t, 2, locs[0].Source.Start.Line)
	assert.Equal(t, 5, locs[0].Source.Start.Column)
}

func TestChecker_CheckFile(t *testing.T) {
	checker, err := NewChecker(WithWordlist(writeWordlist(t)))
	require.NoError(t, err)
	defer checker.Close()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello wrold"), 0644))

	locs, err := checker.CheckFile(path)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, 6, locs[0].Match.Index)

	_, err = checker.CheckFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestChecker_Suggest(t *testing.T) {
	checker, err := NewChecker(WithWordlist(writeWordlist(t)), WithSuggestLimit(1))
	require.NoError(t, err)
	defer checker.Close()

	suggestions, err := checker.Suggest("wrold")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "world", suggestions[0].Word)
	assert.Equal(t, 2, suggestions[0].Distance)
}

func TestChecker_AfterClose(t *testing.T) {
	checker, err := NewChecker(WithWordlist(writeWordlist(t)))
	require.NoError(t, err)
	require.NoError(t, checker.Close())

	_, err = checker.Check("hello")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestLoadBuiltinRules(t *testing.T) {
	rules, err := LoadBuiltinRules()
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, r := range rules {
		ids[r.ID] = true
	}
	assert.True(t, ids["scribe.url"])
	assert.True(t, ids["scribe.email"])
}
