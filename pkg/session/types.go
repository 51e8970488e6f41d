package session

import "github.com/praetorian-inc/scribe/pkg/types"

// InitRequest selects the dictionary and seeds the custom words.
type InitRequest struct {
	AffPath     string   `json:"aff_path"`
	DicPath     string   `json:"dic_path"`
	Language    string   `json:"language,omitempty"`
	Backend     string   `json:"backend,omitempty"`
	SearchDirs  []string `json:"search_dirs,omitempty"`
	CustomWords []string `json:"custom_words"`
}

// Document is a text to check together with where it came from.
type Document struct {
	Source  string `json:"source"`  // e.g., a file path or "stdin"
	Content string `json:"content"` // the text to check
}

// DocumentResult holds the misspellings found in one document.
type DocumentResult struct {
	Source  string        `json:"source"`
	Matches []types.Match `json:"matches"`
}

// BatchResult holds results for several documents.
type BatchResult struct {
	Results []DocumentResult `json:"results"`
	Total   int              `json:"total"`
}

// DebugLogger provides platform-specific logging
type DebugLogger interface {
	Log(format string, args ...interface{})
}

// NoopLogger is a no-op logger
type NoopLogger struct{}

func (NoopLogger) Log(format string, args ...interface{}) {}
