package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSCZeroSetsTitleAndIconName(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b]0;my window\x07")
	assert.Equal(t, "my window", screen.Title())
	assert.Equal(t, "my window", screen.IconName())
}

func TestOSCOneSetsIconNameOnly(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b]1;icon\x07")
	assert.Equal(t, "icon", screen.IconName())
	assert.Equal(t, "", screen.Title())
}

func TestOSCTwoSetsTitleOnly(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b]2;title only\x07")
	assert.Equal(t, "title only", screen.Title())
	assert.Equal(t, "", screen.IconName())
}

func TestOSCTerminatedByST(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b]2;st terminated\x1b\\")
	assert.Equal(t, "st terminated", screen.Title())
}

func TestOSCEscNotFollowedBySlashIsKeptAsText(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)
	// An ESC inside the OSC text not followed by '\' is not a terminator;
	// the reference implementation appends the peeked pair as literal text
	// and keeps accumulating until a real terminator arrives.
	stream.FeedString("\x1b]2;a\x1bxb\x07")
	assert.Equal(t, "a\x1bxb", screen.Title())
}

func TestOSCUnrecognizedCodeEmitsDebug(t *testing.T) {
	rec := &recordingListener{}
	stream := NewStream()
	stream.Attach(rec)
	stream.FeedString("\x1b]9;whatever\x07")
	assert.Contains(t, rec.events, "osc")
}

func TestOSCPaletteCodesAreAbsorbedWithoutDispatch(t *testing.T) {
	screen := NewScreen(80, 24)
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b]Rignored\x07")
	assert.Equal(t, "", screen.Title())
	// The trailing text after the absorbed "R" code is parsed fresh as
	// ordinary stream input, so it lands on the display as drawn characters.
	assert.Contains(t, screen.Display()[0], "ignored")
}

func TestSyncScreenTitleAndIconNameDelegate(t *testing.T) {
	screen := NewSyncScreen(NewScreen(80, 24))
	stream := NewStream()
	stream.Attach(screen)
	stream.FeedString("\x1b]0;synced\x07")
	assert.Equal(t, "synced", screen.Title())
	assert.Equal(t, "synced", screen.IconName())
}
