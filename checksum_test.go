package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumStableAcrossIdenticalHistories(t *testing.T) {
	a := NewScreen(20, 5)
	b := NewScreen(20, 5)
	sa := NewStream()
	sb := NewStream()
	sa.Attach(a)
	sb.Attach(b)

	sa.FeedString("hello\x1b[31mworld")
	sb.FeedString("hello\x1b[31mworld")

	assert.Equal(t, a.Checksum(), b.Checksum())
}

func TestChecksumChangesOnDraw(t *testing.T) {
	screen := NewScreen(20, 5)
	stream := NewStream()
	stream.Attach(screen)
	before := screen.Checksum()
	stream.FeedString("x")
	after := screen.Checksum()
	assert.NotEqual(t, before, after)
}
