package types

// TextSpan is a word found by the tokenizer.
// Start and Length are byte offsets into the scanned string.
type TextSpan struct {
	Text   string
	Start  int
	Length int
}

// End returns the byte offset one past the last byte of the span.
func (s TextSpan) End() int {
	return s.Start + s.Length
}

// Offset returns the span as a half-open byte range.
func (s TextSpan) Offset() OffsetSpan {
	return OffsetSpan{Start: s.Start, End: s.End()}
}
