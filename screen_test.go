package vtscreen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFed(t *testing.T, columns, lines int, input string) (*Screen, *Stream) {
	t.Helper()
	screen := NewScreen(columns, lines)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString(input)
	return screen, stream
}

func TestHelloWorld(t *testing.T) {
	screen, _ := newFed(t, 80, 24, "Hello World!")
	display := screen.Display()
	require.Len(t, display, 24)
	assert.Equal(t, "Hello World!"+strings.Repeat(" ", 80-len("Hello World!")), display[0])
	for _, row := range display[1:] {
		assert.Equal(t, strings.Repeat(" ", 80), row)
	}
	cur := screen.CursorState()
	assert.Equal(t, 12, cur.X)
	assert.Equal(t, 0, cur.Y)
}

func TestCursorUp(t *testing.T) {
	screen := NewScreen(80, 24)
	screen.cursor.X, screen.cursor.Y = 0, 10
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b[5A")
	cur := screen.CursorState()
	assert.Equal(t, 0, cur.X)
	assert.Equal(t, 5, cur.Y)
}

func TestWrapAtRightEdge(t *testing.T) {
	screen, _ := newFed(t, 80, 24, strings.Repeat("X", 81))
	display := screen.Display()
	assert.Equal(t, strings.Repeat("X", 80), display[0])
	assert.Equal(t, "X"+strings.Repeat(" ", 79), display[1])
	cur := screen.CursorState()
	assert.Equal(t, 1, cur.X)
	assert.Equal(t, 1, cur.Y)
}

func TestScrollAtBottom(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)

	for y := 0; y < 24; y++ {
		screen.grid[y][0] = DefaultCell.styled(string(rune('a' + y)))
	}
	screen.cursor.X, screen.cursor.Y = 0, 23

	stream.FeedString("\n")

	display := screen.Display()
	for y := 0; y < 23; y++ {
		assert.Equal(t, string(rune('a'+y+1))+strings.Repeat(" ", 79), display[y])
	}
	assert.Equal(t, strings.Repeat(" ", 80), display[23])
	cur := screen.CursorState()
	assert.Equal(t, 0, cur.X)
	assert.Equal(t, 23, cur.Y)
}

// Save/restore fully restores cursor position, not just style, matching
// the reference implementation's tested behavior: restoring to the saved
// column means the second draw overwrites the cell the first draw wrote.
func TestSaveRestoreWithSGR(t *testing.T) {
	screen, _ := newFed(t, 80, 24, "\x1b[31m\x1b7\x1b[32mA\x1b8B")
	assert.Equal(t, "B", screen.CellAt(0, 0).Data)
	assert.Equal(t, "red", screen.CellAt(0, 0).Fg)
	assert.Equal(t, 1, screen.CursorState().X)
}

func TestEraseInDisplayMode2(t *testing.T) {
	screen, _ := newFed(t, 10, 3, "abc\r\ndef\r\nghi")
	before := screen.CursorState()
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b[2J")
	for _, row := range screen.Display() {
		assert.Equal(t, strings.Repeat(" ", 10), row)
	}
	assert.Equal(t, before, screen.CursorState())
}

func TestModeSetResetIdempotent(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)
	// DECAWM is on by default; clear it first so the set/reset round trip
	// starts from a state where the mode is not already set.
	stream.FeedString("\x1b[?7l")

	before := screen.Modes()
	stream.FeedString("\x1b[?7h")
	stream.FeedString("\x1b[?7h")
	afterSet := screen.Modes()
	stream.FeedString("\x1b[?7l")
	afterReset := screen.Modes()

	assert.True(t, afterSet[private(ModeDECAWM)])
	assert.Equal(t, before, afterReset)
}

func TestResetTwiceEqualsOnce(t *testing.T) {
	screen, stream := newFed(t, 80, 24, "hello")
	stream.FeedString("\x1bc")
	once := screen.Checksum()
	stream.FeedString("\x1bc")
	twice := screen.Checksum()
	assert.Equal(t, once, twice)
}

func TestResizeShrinkDropsLeftColumns(t *testing.T) {
	screen, _ := newFed(t, 10, 5, "abcdefghij")
	screen.Resize(3, 5)
	display := screen.Display()
	require.Len(t, display, 3)
	assert.Equal(t, "fghij", display[0])
}

func TestDebugOnUnrecognizedSequence(t *testing.T) {
	var got []string
	rec := &recordingListener{BaseListener: BaseListener{}}
	stream := NewStream()
	stream.Attach(rec)
	stream.FeedString("\x1bZ")
	got = rec.events
	assert.Contains(t, got, "escape")
}

type recordingListener struct {
	BaseListener
	events []string
}

func (r *recordingListener) Debug(event string, params []int, b byte) {
	r.events = append(r.events, event)
}
