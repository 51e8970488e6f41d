//go:build wasm

package main

import (
	"encoding/json"
	"strings"
	"sync"
	"syscall/js"

	"github.com/praetorian-inc/scribe/pkg/dictionary"
	"github.com/praetorian-inc/scribe/pkg/ignore"
	"github.com/praetorian-inc/scribe/pkg/rule"
	"github.com/praetorian-inc/scribe/pkg/session"
	"github.com/praetorian-inc/scribe/pkg/store"
)

var (
	checkers   = make(map[int]*session.Session)
	checkersMu sync.RWMutex
	nextID     int
)

// newChecker creates a checker over a word list held by the page.
// There is no hunspell in the browser, so the in-process engine is used.
// JS: ScribeNewChecker(wordsText, customWordsJSON?) -> {handle} or {error}
func newChecker(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "wordsText argument required"}
	}

	words, err := dictionary.ReadWords(strings.NewReader(args[0].String()))
	if err != nil {
		return map[string]interface{}{"error": "failed to read words: " + err.Error()}
	}

	var custom []string
	if len(args) > 1 && args[1].Type() == js.TypeString {
		if err := json.Unmarshal([]byte(args[1].String()), &custom); err != nil {
			return map[string]interface{}{"error": "failed to parse custom words JSON: " + err.Error()}
		}
	}

	m, err := ignore.Load(ignore.DefaultConfig())
	if err != nil {
		return map[string]interface{}{"error": "failed to load ignore rules: " + err.Error()}
	}

	s, err := store.New(store.Config{Path: store.MemoryPath})
	if err != nil {
		return map[string]interface{}{"error": "failed to create word store: " + err.Error()}
	}

	opts := []session.Option{
		session.WithStore(s),
		session.WithOpener(func(dictionary.Config) (dictionary.Dictionary, error) {
			return dictionary.NewWordlist(words)
		}),
	}
	if m != nil {
		opts = append(opts, session.WithExcluder(m))
	}

	sess := session.New(opts...)
	if err := sess.Init(session.InitRequest{CustomWords: custom}); err != nil {
		sess.Close()
		return map[string]interface{}{"error": "failed to create checker: " + err.Error()}
	}

	// Register checker
	checkersMu.Lock()
	id := nextID
	nextID++
	checkers[id] = sess
	checkersMu.Unlock()

	return map[string]interface{}{"handle": id}
}

func lookup(args []js.Value, n int) (*session.Session, map[string]interface{}) {
	if len(args) < n {
		return nil, map[string]interface{}{"error": "missing arguments"}
	}

	checkersMu.RLock()
	sess, ok := checkers[args[0].Int()]
	checkersMu.RUnlock()

	if !ok {
		return nil, map[string]interface{}{"error": "invalid checker handle"}
	}
	return sess, nil
}

// check returns the misspelled words of a text with UTF-16 offsets, which
// index JavaScript strings directly.
// JS: ScribeCheck(handle, text) -> JSON matches or {error}
func check(this js.Value, args []js.Value) interface{} {
	sess, errResult := lookup(args, 2)
	if errResult != nil {
		return errResult
	}

	matches, err := sess.Check(args[1].String())
	if err != nil {
		return map[string]interface{}{"error": "check failed: " + err.Error()}
	}
	return marshal(matches)
}

// suggest returns corrections for a word.
// JS: ScribeSuggest(handle, word) -> JSON suggestions or {error}
func suggest(this js.Value, args []js.Value) interface{} {
	sess, errResult := lookup(args, 2)
	if errResult != nil {
		return errResult
	}

	word := args[1].String()
	candidates, err := sess.Suggest(word)
	if err != nil {
		return map[string]interface{}{"error": "suggest failed: " + err.Error()}
	}
	return marshal(dictionary.WithDistances(word, candidates))
}

// addWord accepts a word for the life of the checker.
// JS: ScribeAddWord(handle, word) -> null or {error}
func addWord(this js.Value, args []js.Value) interface{} {
	sess, errResult := lookup(args, 2)
	if errResult != nil {
		return errResult
	}

	if err := sess.AddWord(args[1].String()); err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	return nil
}

// listWords returns the checker's custom words in the order they were added.
// JS: ScribeWords(handle) -> JSON words or {error}
func listWords(this js.Value, args []js.Value) interface{} {
	sess, errResult := lookup(args, 1)
	if errResult != nil {
		return errResult
	}
	return marshal(sess.Words())
}

// closeChecker closes a checker and releases resources.
// JS: ScribeCloseChecker(handle)
func closeChecker(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	checkersMu.Lock()
	sess, ok := checkers[handle]
	if ok {
		delete(checkers, handle)
	}
	checkersMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid checker handle"}
	}

	sess.Close()

	return nil
}

// getIgnoreRules returns the built-in ignore rules as JSON.
// JS: ScribeGetIgnoreRules() -> JSON rules array
func getIgnoreRules(this js.Value, args []js.Value) interface{} {
	rules, err := rule.NewLoader().LoadBuiltinRules()
	if err != nil {
		return map[string]interface{}{"error": "failed to load builtin rules: " + err.Error()}
	}
	return marshal(rules)
}

func marshal(v interface{}) interface{} {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal results: " + err.Error()}
	}
	return string(jsonBytes)
}
