package types

import "unicode/utf16"

// LocateMatches attaches line/column positions to matches found in content.
// Matches must be in ascending Index order, as the checker reports them.
func LocateMatches(content string, matches []Match) []Location {
	locs := make([]Location, 0, len(matches))

	line, column, unit := 1, 1, 0
	next := 0
	for _, r := range content {
		for next < len(matches) && matches[next].Index == unit {
			locs = append(locs, locate(matches[next], line, column))
			next++
		}
		if next == len(matches) {
			return locs
		}
		n := utf16.RuneLen(r)
		unit += n
		if r == '\n' {
			line++
			column = 1
		} else {
			column += n
		}
	}
	for ; next < len(matches); next++ {
		locs = append(locs, locate(matches[next], line, column))
	}
	return locs
}

func locate(m Match, line, column int) Location {
	return Location{
		Match: m,
		Source: SourceSpan{
			Start: SourcePoint{Line: line, Column: column},
			End:   SourcePoint{Line: line, Column: column + m.Length},
		},
	}
}
