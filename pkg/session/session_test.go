package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praetorian-inc/scribe/pkg/dictionary"
	"github.com/praetorian-inc/scribe/pkg/store"
	"github.com/praetorian-inc/scribe/pkg/types"
)

type fakeDict struct {
	mu     sync.Mutex
	known  map[string]bool
	closed bool
}

func (d *fakeDict) Check(word string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.known[word], nil
}

func (d *fakeDict) Suggest(word string) ([]string, error) {
	if word == "wrold" {
		return []string{"world", "would"}, nil
	}
	return []string{}, nil
}

func (d *fakeDict) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func opener(dicts *[]*fakeDict, words ...string) Opener {
	return func(cfg dictionary.Config) (dictionary.Dictionary, error) {
		if cfg.AffPath == "missing.aff" {
			return nil, dictionary.ErrDictionaryNotFound
		}
		d := &fakeDict{known: make(map[string]bool)}
		for _, w := range words {
			d.known[w] = true
		}
		*dicts = append(*dicts, d)
		return d, nil
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestSession_NotInitialized(t *testing.T) {
	s := New()

	_, err := s.Check("hello")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.EqualError(t, err, "spell checker not initialized")

	_, err = s.Suggest("helo")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = s.CheckBatch([]Document{{Source: "a", Content: "b"}})
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.False(t, s.Initialized())
}

func TestSession_InitAndCheck(t *testing.T) {
	var dicts []*fakeDict
	logger := &recordingLogger{}
	s := New(WithOpener(opener(&dicts, "this", "is")), WithLogger(logger))

	require.NoError(t, s.Init(InitRequest{AffPath: "en_US.aff", DicPath: "en_US.dic"}))
	assert.True(t, s.Initialized())
	assert.NotEmpty(t, logger.lines)

	matches, err := s.Check("Helo wrold, this is fyne.")
	require.NoError(t, err)
	assert.Equal(t, []types.Match{
		{Word: "Helo", Index: 0, Length: 4},
		{Word: "wrold", Index: 5, Length: 5},
		{Word: "fyne", Index: 19, Length: 4},
	}, matches)

	require.NoError(t, s.AddWord("fyne"))
	matches, err = s.Check("Helo wrold, this is fyne.")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestSession_InitFillsDefaults(t *testing.T) {
	var got []dictionary.Config
	open := func(cfg dictionary.Config) (dictionary.Dictionary, error) {
		got = append(got, cfg)
		return &fakeDict{known: map[string]bool{}}, nil
	}
	defaults := dictionary.Config{
		Backend:    dictionary.BackendWordlist,
		AffPath:    "/dicts/en_GB.aff",
		DicPath:    "/dicts/en_GB.dic",
		Language:   "en_GB",
		SearchDirs: []string{"/dicts"},
	}
	s := New(WithOpener(open), WithDefaults(defaults))

	require.NoError(t, s.Init(InitRequest{}))
	require.NoError(t, s.Init(InitRequest{
		Backend:    dictionary.BackendHunspell,
		DicPath:    "/other/fr.dic",
		Language:   "fr",
		SearchDirs: []string{"/other"},
	}))

	require.Len(t, got, 2)
	assert.Equal(t, defaults, got[0])
	assert.Equal(t, dictionary.Config{
		Backend:    dictionary.BackendHunspell,
		DicPath:    "/other/fr.dic",
		Language:   "fr",
		SearchDirs: []string{"/other"},
	}, got[1])
}

func TestSession_InitFailureKeepsState(t *testing.T) {
	var dicts []*fakeDict
	s := New(WithOpener(opener(&dicts)))

	require.NoError(t, s.Init(InitRequest{CustomWords: []string{"keep"}}))
	err := s.Init(InitRequest{AffPath: "missing.aff", DicPath: "missing.dic", CustomWords: []string{"lost"}})
	assert.ErrorIs(t, err, dictionary.ErrDictionaryNotFound)

	assert.True(t, s.Initialized())
	assert.Equal(t, []string{"keep"}, s.Words())
}

func TestSession_ReinitReplacesWordsAndClosesOldDictionary(t *testing.T) {
	var dicts []*fakeDict
	s := New(WithOpener(opener(&dicts)))

	require.NoError(t, s.Init(InitRequest{CustomWords: []string{"one", "two"}}))
	require.NoError(t, s.AddWord("three"))
	assert.Equal(t, []string{"one", "two", "three"}, s.Words())

	require.NoError(t, s.Init(InitRequest{CustomWords: []string{"four"}}))
	assert.Equal(t, []string{"four"}, s.Words())

	require.Len(t, dicts, 2)
	assert.True(t, dicts[0].closed)
	assert.False(t, dicts[1].closed)
}

func TestSession_Suggest(t *testing.T) {
	var dicts []*fakeDict
	s := New(WithOpener(opener(&dicts)))
	require.NoError(t, s.Init(InitRequest{}))

	got, err := s.Suggest("wrold")
	require.NoError(t, err)
	assert.Equal(t, []string{"world", "would"}, got)
}

func TestSession_AddWord(t *testing.T) {
	s := New()

	require.NoError(t, s.AddWord("early"))
	require.NoError(t, s.AddWord("early"))
	assert.Equal(t, []string{"early"}, s.Words())

	assert.ErrorIs(t, s.AddWord(" "), store.ErrEmptyWord)
	assert.Equal(t, []string{}, New().Words())
}

func TestSession_StorePersistsWords(t *testing.T) {
	var dicts []*fakeDict
	st := store.NewMemory()
	require.NoError(t, st.Add("stored"))

	s := New(WithOpener(opener(&dicts)), WithStore(st))
	require.NoError(t, s.Init(InitRequest{CustomWords: []string{"given"}}))
	assert.Equal(t, []string{"given", "stored"}, s.Words())

	require.NoError(t, s.AddWord("added"))
	words, err := st.Words()
	require.NoError(t, err)
	assert.Equal(t, []string{"stored", "added"}, words)

	matches, err := s.Check("given stored added other")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "other", matches[0].Word)
}

type spanExcluder struct{ needle string }

func (e spanExcluder) Exclusions(text string) []types.OffsetSpan {
	i := strings.Index(text, e.needle)
	if i < 0 {
		return nil
	}
	return []types.OffsetSpan{{Start: i, End: i + len(e.needle)}}
}

func TestSession_Excluder(t *testing.T) {
	var dicts []*fakeDict
	s := New(WithOpener(opener(&dicts)), WithExcluder(spanExcluder{"skipme"}))
	require.NoError(t, s.Init(InitRequest{}))

	matches, err := s.Check("😀 skipme flagd")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, types.Match{Word: "flagd", Index: 10, Length: 5}, matches[0])
}

func TestSession_CheckBatch(t *testing.T) {
	var dicts []*fakeDict
	s := New(WithOpener(opener(&dicts, "ok")))
	require.NoError(t, s.Init(InitRequest{}))

	result, err := s.CheckBatch([]Document{
		{Source: "a.txt", Content: "ok bda"},
		{Source: "b.txt", Content: "ok ok"},
		{Source: "c.txt", Content: "xx yy"},
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 3)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, "c.txt", result.Results[2].Source)
	assert.Empty(t, result.Results[1].Matches)
}

func TestSession_ConcurrentUse(t *testing.T) {
	var dicts []*fakeDict
	s := New(WithOpener(opener(&dicts, "the")))
	require.NoError(t, s.Init(InitRequest{}))

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := s.Check("the quick brown fox"); err != nil {
				errs <- err
			}
		}()
		go func(i int) {
			defer wg.Done()
			if err := s.AddWord(fmt.Sprintf("word%d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.Len(t, s.Words(), 20)
}

func TestSession_Close(t *testing.T) {
	var dicts []*fakeDict
	s := New(WithOpener(opener(&dicts)))
	require.NoError(t, s.Init(InitRequest{}))

	require.NoError(t, s.Close())
	assert.True(t, dicts[0].closed)
	_, err := s.Check("x")
	assert.True(t, errors.Is(err, ErrNotInitialized))
}
