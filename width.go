package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1
// for normal characters, 0 for zero-width marks and control characters.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
