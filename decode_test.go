package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestDecoderDefaultUTF8(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	dec := NewDecoder()
	dec.Feed([]byte("héllo"), stream)
	assert.Equal(t, "héllo     ", screen.Display()[0])
}

func TestDecoderFallbackChain(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	dec := NewDecoder(
		Fallback{Encoding: nil, Policy: PolicyFallback},
		Fallback{Encoding: charmap.ISO8859_1, Policy: PolicyReplace},
	)
	// 0xE9 alone is invalid UTF-8 but valid Latin-1 for 'é'.
	dec.Feed([]byte{0xE9}, stream)
	assert.Equal(t, "é", screen.Display()[0][:2])
}

func TestDecoderSkipPolicy(t *testing.T) {
	screen := NewScreen(10, 1)
	stream := NewStream()
	stream.Attach(screen)
	dec := NewDecoder(Fallback{Encoding: nil, Policy: PolicySkip})
	dec.Feed([]byte{0xFF, 'A'}, stream)
	assert.Equal(t, "A", screen.Display()[0][:1])
}
