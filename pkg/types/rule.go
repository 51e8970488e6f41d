package types

// Rule describes a region of text whose words are never spell-checked,
// such as a URL or an inline code span.
type Rule struct {
	ID               string   // e.g., "scribe.url"
	Name             string   // human-readable name
	Pattern          string   // regex pattern
	Description      string   // optional
	Examples         []string // text the pattern must cover
	NegativeExamples []string // text the pattern must not cover
	Keywords         []string // keywords for Aho-Corasick prefiltering
}
