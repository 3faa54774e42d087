package vtscreen

import "github.com/unilibs/uniwidth"

// runeWidth returns the terminal column width of r: 0 for combining marks
// and other zero-width runes, 2 for wide (CJK/emoji) runes, 1 otherwise.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWide reports whether r occupies two grid columns.
func isWide(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// isCombining reports whether r is a zero-width rune (a combining mark or
// any other non-NUL rune of width 0) that should merge into the previously
// drawn cell instead of occupying its own column.
func isCombining(r rune) bool {
	return uniwidth.RuneWidth(r) == 0 && r != 0
}
