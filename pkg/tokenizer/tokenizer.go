// Package tokenizer splits text into the word spans that get spell-checked.
package tokenizer

import (
	"iter"
	"regexp"

	"github.com/praetorian-inc/scribe/pkg/types"
)

// wordChars is the Unicode word-character class: alphabetic characters,
// marks, decimal digits, connector punctuation such as '_', and the join
// controls ZWNJ and ZWJ. Letter numbers (Ⅻ) and the enclosed Latin letters
// (Ⓐ, 🄰, 🅐, 🅰) are alphabetic even though they are not in \p{L}.
const wordChars = `[\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}\x{200C}\x{200D}` +
	`\x{24B6}-\x{24E9}\x{1F130}-\x{1F149}\x{1F150}-\x{1F169}\x{1F170}-\x{1F189}]`

// Apostrophes are ASCII ' and U+2019, each flanked by word characters.
var wordRe = regexp.MustCompile(wordChars + `+(?:['’]` + wordChars + `+)*`)

// Scan returns the words of text in left-to-right order.
//
// The sequence is lazy and restartable: each range over it scans text from
// the beginning. Spans never overlap and carry byte offsets.
func Scan(text string) iter.Seq[types.TextSpan] {
	return func(yield func(types.TextSpan) bool) {
		pos := 0
		for pos < len(text) {
			loc := wordRe.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]
			if !yield(types.TextSpan{Text: text[start:end], Start: start, Length: end - start}) {
				return
			}
			pos = end
		}
	}
}

// Words collects Scan into a slice.
func Words(text string) []types.TextSpan {
	spans := []types.TextSpan{}
	for span := range Scan(text) {
		spans = append(spans, span)
	}
	return spans
}
