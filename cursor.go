package vtscreen

// Cursor is the screen's mutable cursor: position, the style template
// applied to newly written cells, and visibility.
type Cursor struct {
	X      int
	Y      int
	Attrs  Cell
	Hidden bool
}

// newCursor returns a cursor at the origin with the default style, visible.
func newCursor() Cursor {
	return Cursor{Attrs: DefaultCell}
}
