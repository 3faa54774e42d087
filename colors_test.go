package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSGRExtendedIndexedColor(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b[38;5;196mX")
	assert.Equal(t, color256[196], screen.CellAt(0, 0).Fg)
}

func TestSGRExtendedTruecolor(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b[38;2;10;20;30mX")
	assert.Equal(t, "0a141e", screen.CellAt(0, 0).Fg)
}

func TestSGRMalformedExtendedColorIsIgnored(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b[38;5mX")
	assert.Equal(t, DefaultColor, screen.CellAt(0, 0).Fg)
}

func TestSGRBrightForeground(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b[91mX")
	assert.Equal(t, "bright-red", screen.CellAt(0, 0).Fg)
}

func TestColor256TableSize(t *testing.T) {
	assert.Equal(t, "000000", color256[0])
	assert.Equal(t, "cd0000", color256[1])
	assert.Equal(t, "ffffff", color256[15])
	assert.Len(t, color256, 256)
}
