// Package vtscreen implements an in-memory VT100/ECMA-48-family terminal
// emulator: a character-driven parser that recognizes control codes, escape
// sequences, CSI sequences, sharp sequences and charset designations, and a
// screen model that owns the grid, cursor, margins, modes, tab stops,
// charset state and a save/restore stack.
//
// The package performs no I/O. Callers feed it runes (via Stream.Feed) or
// bytes (via a Decoder), attach one or more Listener implementations — most
// commonly a *Screen — and read the resulting grid back out with
// Screen.Display.
//
// A minimal program:
//
//	screen := vtscreen.NewScreen(80, 24)
//	stream := vtscreen.NewStream()
//	stream.Attach(screen)
//	stream.FeedString("Hello, World!\r\n")
//	for _, line := range screen.Display() {
//		fmt.Println(line)
//	}
package vtscreen
