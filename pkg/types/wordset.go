package types

import "slices"

// WordSet is an insertion-ordered set of custom words.
// Membership is exact string equality: case-sensitive, no normalization.
//
// A WordSet is not safe for concurrent mutation; the owning session
// guards it.
type WordSet struct {
	order []string
	index map[string]struct{}
}

// NewWordSet creates a set holding words in the given order, skipping
// duplicates.
func NewWordSet(words ...string) *WordSet {
	ws := &WordSet{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		ws.Add(w)
	}
	return ws
}

// Add appends word if it is not already present and reports whether it was
// added.
func (ws *WordSet) Add(word string) bool {
	if ws.index == nil {
		ws.index = make(map[string]struct{})
	}
	if _, ok := ws.index[word]; ok {
		return false
	}
	ws.index[word] = struct{}{}
	ws.order = append(ws.order, word)
	return true
}

// Contains reports whether word is in the set.
func (ws *WordSet) Contains(word string) bool {
	if ws == nil {
		return false
	}
	_, ok := ws.index[word]
	return ok
}

// Len returns the number of words in the set.
func (ws *WordSet) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.order)
}

// Words returns a copy of the words in insertion order.
func (ws *WordSet) Words() []string {
	if ws == nil {
		return nil
	}
	return slices.Clone(ws.order)
}
