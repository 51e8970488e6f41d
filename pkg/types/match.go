package types

// Match is a misspelled word reported to the editor.
// Index and Length are UTF-16 code units so a UI that indexes text in
// 16-bit units can slice the source directly.
type Match struct {
	Word   string `json:"word"`
	Index  int    `json:"index"`
	Length int    `json:"length"`
}

// End returns the UTF-16 offset one past the last code unit of the word.
func (m Match) End() int {
	return m.Index + m.Length
}
