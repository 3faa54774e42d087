package vtscreen

// Listener is the statically-typed replacement for the reference
// implementation's dynamic dispatch-by-method-name: Stream calls exactly
// one method per recognized event, in the order events arrive, on every
// attached Listener. *Screen implements Listener in full; BaseListener
// gives any other type a no-op default for every method so it need only
// override the handful of events it cares about.
type Listener interface {
	// Draw is called once per drawable character, with the rune as it
	// arrived; charset translation is left to the listener (Screen.Draw
	// applies its active G0/G1 table).
	Draw(ch rune)
	// Debug is called for unrecognized sequences, carrying whatever
	// parameters and final byte the parser had accumulated.
	Debug(event string, params []int, b byte)

	Bell()
	Backspace()
	Tab()
	LineFeed()
	CarriageReturn()
	ShiftOut()
	ShiftIn()
	Reset()

	Index()
	ReverseIndex()
	SetTabStop()
	ClearTabStop(mode int)
	SaveCursor()
	RestoreCursor()
	AlignmentDisplay()
	SetCharset(code rune, mode byte)

	CursorUp(n int)
	CursorDown(n int)
	CursorForward(n int)
	CursorBack(n int)
	CursorUp1(n int)
	CursorDown1(n int)
	CursorToColumn(n int)
	CursorToLine(n int)
	CursorPosition(line, col int)

	InsertLines(n int)
	DeleteLines(n int)
	InsertCharacters(n int)
	DeleteCharacters(n int)
	EraseCharacters(n int)
	EraseInLine(mode int)
	EraseInDisplay(mode int)

	SetMode(private bool, params []int)
	ResetMode(private bool, params []int)
	SelectGraphicRendition(params []int)
	SetMargins(top, bottom int)

	ReportDeviceAttributes()
	ReportDeviceStatus(mode int)

	SetTitle(title string)
	SetIconName(name string)
}

// BeforeHook is an optional capability a Listener may additionally
// implement: Before is called immediately before the named event's
// handler method.
type BeforeHook interface {
	Before(event string)
}

// AfterHook is the After-side counterpart of BeforeHook.
type AfterHook interface {
	After(event string)
}

// BaseListener implements every Listener method as a no-op. Embed it to
// build a listener that only overrides the events it needs.
type BaseListener struct{}

func (BaseListener) Draw(ch rune)                    {}
func (BaseListener) Debug(event string, params []int, b byte) {}
func (BaseListener) Bell()                           {}
func (BaseListener) Backspace()                      {}
func (BaseListener) Tab()                            {}
func (BaseListener) LineFeed()                       {}
func (BaseListener) CarriageReturn()                 {}
func (BaseListener) ShiftOut()                       {}
func (BaseListener) ShiftIn()                        {}
func (BaseListener) Reset()                          {}
func (BaseListener) Index()                          {}
func (BaseListener) ReverseIndex()                   {}
func (BaseListener) SetTabStop()                     {}
func (BaseListener) ClearTabStop(mode int)           {}
func (BaseListener) SaveCursor()                     {}
func (BaseListener) RestoreCursor()                  {}
func (BaseListener) AlignmentDisplay()               {}
func (BaseListener) SetCharset(code rune, mode byte) {}
func (BaseListener) CursorUp(n int)                  {}
func (BaseListener) CursorDown(n int)                {}
func (BaseListener) CursorForward(n int)             {}
func (BaseListener) CursorBack(n int)                {}
func (BaseListener) CursorUp1(n int)                 {}
func (BaseListener) CursorDown1(n int)               {}
func (BaseListener) CursorToColumn(n int)            {}
func (BaseListener) CursorToLine(n int)              {}
func (BaseListener) CursorPosition(line, col int)    {}
func (BaseListener) InsertLines(n int)               {}
func (BaseListener) DeleteLines(n int)               {}
func (BaseListener) InsertCharacters(n int)          {}
func (BaseListener) DeleteCharacters(n int)          {}
func (BaseListener) EraseCharacters(n int)           {}
func (BaseListener) EraseInLine(mode int)            {}
func (BaseListener) EraseInDisplay(mode int)         {}
func (BaseListener) SetMode(private bool, params []int)   {}
func (BaseListener) ResetMode(private bool, params []int) {}
func (BaseListener) SelectGraphicRendition(params []int)  {}
func (BaseListener) SetMargins(top, bottom int)           {}
func (BaseListener) ReportDeviceAttributes()              {}
func (BaseListener) ReportDeviceStatus(mode int)          {}
func (BaseListener) SetTitle(title string)   {}
func (BaseListener) SetIconName(name string) {}

var _ Listener = BaseListener{}
