// Package offset translates native byte offsets of Go strings into UTF-16
// code-unit offsets, the indexing unit used by editor text components.
package offset

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Cursor tracks how far a scan has translated.
//
// UTF16Pos is the UTF-16 length of text[:NativePos]. A cursor only moves
// forward; a scan creates a fresh one and never resets it.
type Cursor struct {
	NativePos int
	UTF16Pos  int
}

// Advance moves the cursor to nativeStart, the start of the next span, and
// returns the UTF-16 offset of that position.
//
// Only the gap text[NativePos:nativeStart] is measured. The cursor stops at
// the span start, so the span's own bytes are counted by the following
// gap. Its length must be taken from UTF16Len of the span text.
func (c *Cursor) Advance(text string, nativeStart int) int {
	if nativeStart < c.NativePos {
		panic(fmt.Sprintf("offset: cursor moved backwards from %d to %d", c.NativePos, nativeStart))
	}
	c.UTF16Pos += UTF16Len(text[c.NativePos:nativeStart])
	c.NativePos = nativeStart
	return c.UTF16Pos
}

// UTF16Len returns the number of UTF-16 code units s encodes to.
// Runes above U+FFFF count two units; invalid bytes count one each.
func UTF16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		n += utf16.RuneLen(r)
		s = s[size:]
	}
	return n
}
