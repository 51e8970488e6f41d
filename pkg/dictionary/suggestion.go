package dictionary

import "github.com/agext/levenshtein"

// Suggestion is a candidate correction with its edit distance from the
// misspelled word.
type Suggestion struct {
	Word     string `json:"word"`
	Distance int    `json:"distance"`
}

// Suggester is the suggestion half of a Dictionary.
type Suggester interface {
	Suggest(word string) ([]string, error)
}

// Suggestions asks s for corrections of word and attaches edit distances.
// Engine order is kept. A limit of zero or less keeps every candidate.
func Suggestions(s Suggester, word string, limit int) ([]Suggestion, error) {
	candidates, err := s.Suggest(word)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return WithDistances(word, candidates), nil
}

// WithDistances pairs each candidate with its Levenshtein distance to word.
func WithDistances(word string, candidates []string) []Suggestion {
	out := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		out[i] = Suggestion{Word: c, Distance: levenshtein.Distance(word, c, nil)}
	}
	return out
}
