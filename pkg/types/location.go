package types

// OffsetSpan is byte range [Start, End) - half-open interval.
type OffsetSpan struct {
	Start int
	End   int
}

// Overlaps reports whether the two half-open ranges share at least one byte.
func (o OffsetSpan) Overlaps(other OffsetSpan) bool {
	return o.Start < other.End && other.Start < o.End
}

// SourcePoint is line:column position (1-based).
// Column counts UTF-16 code units, matching Match.Index.
type SourcePoint struct {
	Line   int
	Column int
}

// SourceSpan is start-end line:column range.
type SourceSpan struct {
	Start SourcePoint
	End   SourcePoint
}

// Location combines a match with its line/column position in a document.
type Location struct {
	Match  Match
	Source SourceSpan
}
