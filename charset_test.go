package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVT100GraphicsCharset(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	// "ESC ( 0" designates G0 as the VT100 line-drawing set; G0 is already
	// the active charset (SI/SO not needed), so 'l' draws as the
	// upper-left corner glyph rather than the letter.
	stream.FeedString("\x1b(0l")
	assert.Equal(t, "┌", screen.CellAt(0, 0).Data)
}

func TestShiftOutSelectsG1(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b)0\x0el\x0fm")
	assert.Equal(t, "┌", screen.CellAt(0, 0).Data)
	assert.Equal(t, "m", screen.CellAt(1, 0).Data)
}

func TestUnknownDesignatorFallsBackToLAT1(t *testing.T) {
	table := charsetByCode('Z')
	assert.Equal(t, 'a', table.translate('a'))
}

func TestTranslateOutOfRangePassesThrough(t *testing.T) {
	assert.Equal(t, rune(0x4E2D), charsetLAT1.translate(0x4E2D))
}
