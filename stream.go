package vtscreen

import (
	"log/slog"
	"strings"
)

// Control character codes recognized by the parser.
const (
	cNUL byte = 0x00
	cBEL byte = 0x07
	cBS  byte = 0x08
	cHT  byte = 0x09
	cLF  byte = 0x0A
	cVT  byte = 0x0B
	cFF  byte = 0x0C
	cCR  byte = 0x0D
	cSO  byte = 0x0E
	cSI  byte = 0x0F
	cCAN byte = 0x18
	cSUB byte = 0x1A
	cESC byte = 0x1B
	cDEL byte = 0x7F
	cCSI byte = 0x9B
)

type parserState int

const (
	stateStream parserState = iota
	stateEscape
	stateArguments
	stateSharp
	stateCharset
	stateOSC
	stateOSCParam
)

const maxParams = 16

// Stream is a character-driven state machine: it parses control codes,
// escape sequences, CSI sequences, sharp sequences and charset-designation
// sequences one rune at a time and dispatches named events, in attach
// order, to every attached Listener.
type Stream struct {
	state parserState

	params      []int
	paramAcc    int
	paramDigits bool
	private     bool
	charsetMode byte

	oscCode      rune
	oscParam     strings.Builder
	oscPendingST bool

	listeners []Listener
	logger    *slog.Logger
}

// NewStream returns a Stream in its initial ground state with no listeners
// attached.
func NewStream() *Stream {
	return &Stream{
		state:  stateStream,
		logger: slog.Default(),
	}
}

// SetLogger overrides the logger used for the Debug event's structured
// log line. A nil logger disables logging without disabling the Debug
// callback to attached listeners.
func (s *Stream) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Attach appends listener to the ordered dispatch list.
func (s *Stream) Attach(listener Listener) {
	s.listeners = append(s.listeners, listener)
}

// Detach removes the first occurrence of listener from the dispatch list.
func (s *Stream) Detach(listener Listener) {
	for i, l := range s.listeners {
		if l == listener {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// FeedString feeds every rune of str to Feed, in order.
func (s *Stream) FeedString(str string) {
	for _, r := range str {
		s.Feed(r)
	}
}

// emit calls fn on every attached listener, in attach order, wrapped in
// that listener's optional Before/After hooks.
func (s *Stream) emit(event string, fn func(Listener)) {
	for _, l := range s.listeners {
		if h, ok := l.(BeforeHook); ok {
			h.Before(event)
		}
		fn(l)
		if h, ok := l.(AfterHook); ok {
			h.After(event)
		}
	}
}

func (s *Stream) debug(event string, b byte) {
	params := append([]int(nil), s.params...)
	if s.logger != nil {
		s.logger.Debug("unrecognized sequence", "event", event, "params", params, "byte", string(rune(b)))
	}
	s.emit("debug", func(l Listener) { l.Debug(event, params, b) })
}

func (s *Stream) resetParams() {
	s.params = s.params[:0]
	s.paramAcc = 0
	s.paramDigits = false
	s.private = false
}

// pushParam commits the in-progress digit accumulator (or 0, if none was
// seen) onto the parameter list, capping at maxParams entries. b is the
// byte that triggered the commit (';' or the sequence's final byte), used
// only to report overflow beyond the cap as a debug event rather than
// silently dropping it.
func (s *Stream) pushParam(b byte) {
	if len(s.params) < maxParams {
		s.params = append(s.params, s.paramAcc)
	} else {
		s.debug("params_overflow", b)
	}
	s.paramAcc = 0
	s.paramDigits = false
}

func clampParam(n int) int {
	if n < 0 {
		return 0
	}
	if n > 9999 {
		return 9999
	}
	return n
}

// Feed advances the state machine by one user-perceived character.
func (s *Stream) Feed(r rune) {
	switch s.state {
	case stateStream:
		s.feedStream(r)
	case stateEscape:
		s.feedEscape(r)
	case stateArguments:
		s.feedArguments(r)
	case stateSharp:
		s.feedSharp(r)
	case stateCharset:
		s.feedCharset(r)
	case stateOSC:
		s.feedOSC(r)
	case stateOSCParam:
		s.feedOSCParam(r)
	}
}

// dispatchBasic dispatches one of the seven single-character "basic"
// control events, shared between the stream state and mid-sequence
// embedding inside the arguments state. Returns false if ch is not one of
// the seven.
func (s *Stream) dispatchBasic(ch rune) bool {
	switch byte(ch) {
	case cBEL:
		s.emit("bell", func(l Listener) { l.Bell() })
	case cBS:
		s.emit("backspace", func(l Listener) { l.Backspace() })
	case cHT:
		s.emit("tab", func(l Listener) { l.Tab() })
	case cLF, cVT, cFF:
		s.emit("linefeed", func(l Listener) { l.LineFeed() })
	case cCR:
		s.emit("carriage_return", func(l Listener) { l.CarriageReturn() })
	case cSO:
		s.emit("shift_out", func(l Listener) { l.ShiftOut() })
	case cSI:
		s.emit("shift_in", func(l Listener) { l.ShiftIn() })
	default:
		return false
	}
	return true
}

func (s *Stream) feedStream(r rune) {
	if r >= 0 && r <= 0xFF && s.dispatchBasic(r) {
		return
	}
	switch r {
	case rune(cESC):
		s.state = stateEscape
		return
	case rune(cCSI):
		s.resetParams()
		s.state = stateArguments
		return
	case rune(cNUL), rune(cDEL):
		return
	}
	s.emit("draw", func(l Listener) { l.Draw(r) })
}

func (s *Stream) feedEscape(r rune) {
	switch r {
	case '#':
		s.state = stateSharp
		return
	case '[':
		s.resetParams()
		s.state = stateArguments
		return
	case '(', ')':
		s.charsetMode = byte(r)
		s.state = stateCharset
		return
	case ']':
		s.oscParam.Reset()
		s.oscPendingST = false
		s.state = stateOSC
		return
	}

	s.state = stateStream
	switch r {
	case 'c':
		s.emit("reset", func(l Listener) { l.Reset() })
	case 'D':
		s.emit("index", func(l Listener) { l.Index() })
	case 'E':
		s.emit("linefeed", func(l Listener) { l.LineFeed() })
	case 'H':
		s.emit("set_tab_stop", func(l Listener) { l.SetTabStop() })
	case 'M':
		s.emit("reverse_index", func(l Listener) { l.ReverseIndex() })
	case '7':
		s.emit("save_cursor", func(l Listener) { l.SaveCursor() })
	case '8':
		s.emit("restore_cursor", func(l Listener) { l.RestoreCursor() })
	default:
		s.debug("escape", byte(r))
	}
}

func (s *Stream) feedSharp(r rune) {
	s.state = stateStream
	switch r {
	case '8':
		s.emit("alignment_display", func(l Listener) { l.AlignmentDisplay() })
	default:
		s.debug("sharp", byte(r))
	}
}

func (s *Stream) feedCharset(r rune) {
	mode := s.charsetMode
	s.state = stateStream
	s.emit("set_charset", func(l Listener) { l.SetCharset(r, mode) })
}

// feedOSC reads the single code character that follows "ESC ]", matching
// the reference implementation's operating-system-command handling. "R"
// and "P" (palette reset/set) are recognized but not implemented; anything
// else is the code for a subsequent ";text" parameter, read by
// feedOSCParam up to its terminator.
func (s *Stream) feedOSC(r rune) {
	switch r {
	case 'R', 'P':
		s.state = stateStream
		return
	}
	s.oscCode = r
	s.state = stateOSCParam
}

// feedOSCParam accumulates the ";text" tail of an OSC sequence until it
// sees BEL or the two-character ST terminator (ESC '\\'). An ESC not
// followed by '\\' is not a terminator: the reference implementation
// appends the peeked pair to the parameter text and keeps accumulating.
func (s *Stream) feedOSCParam(r rune) {
	if s.oscPendingST {
		s.oscPendingST = false
		if r == '\\' {
			s.finishOSC()
			return
		}
		s.oscParam.WriteByte(cESC)
		s.oscParam.WriteRune(r)
		return
	}
	switch r {
	case rune(cESC):
		s.oscPendingST = true
		return
	case rune(cBEL):
		s.finishOSC()
		return
	}
	s.oscParam.WriteRune(r)
}

// finishOSC dispatches the completed OSC sequence's code and parameter,
// following the reference implementation's "0" (icon name + title), "1"
// (icon name only), "2" (title only) convention; a leading ';' in the
// accumulated parameter is stripped.
func (s *Stream) finishOSC() {
	s.state = stateStream
	param := s.oscParam.String()
	param = strings.TrimPrefix(param, ";")
	switch s.oscCode {
	case '0':
		s.emit("set_icon_name", func(l Listener) { l.SetIconName(param) })
		s.emit("set_title", func(l Listener) { l.SetTitle(param) })
	case '1':
		s.emit("set_icon_name", func(l Listener) { l.SetIconName(param) })
	case '2':
		s.emit("set_title", func(l Listener) { l.SetTitle(param) })
	default:
		s.debug("osc", byte(s.oscCode))
	}
}

func (s *Stream) feedArguments(r rune) {
	if r == '?' && len(s.params) == 0 && !s.paramDigits {
		s.private = true
		return
	}
	if r >= 0 && r <= 0xFF && s.dispatchBasic(r) {
		return
	}
	switch r {
	case ' ':
		return
	case rune(cCAN), rune(cSUB):
		s.state = stateStream
		s.emit("draw", func(l Listener) { l.Draw(r) })
		return
	}
	if r >= '0' && r <= '9' {
		s.paramAcc = s.paramAcc*10 + int(r-'0')
		if s.paramAcc > 9999 {
			s.paramAcc = 9999
		}
		s.paramDigits = true
		return
	}
	if r == ';' {
		s.pushParam(byte(r))
		return
	}

	s.pushParam(byte(r))
	params := s.params
	private := s.private
	s.state = stateStream

	switch r {
	case '@':
		s.emit("insert_characters", func(l Listener) { l.InsertCharacters(arg(params, 0, 1)) })
	case 'A':
		s.emit("cursor_up", func(l Listener) { l.CursorUp(arg(params, 0, 1)) })
	case 'B':
		s.emit("cursor_down", func(l Listener) { l.CursorDown(arg(params, 0, 1)) })
	case 'C', 'a':
		s.emit("cursor_forward", func(l Listener) { l.CursorForward(arg(params, 0, 1)) })
	case 'D':
		s.emit("cursor_back", func(l Listener) { l.CursorBack(arg(params, 0, 1)) })
	case 'E':
		s.emit("cursor_down1", func(l Listener) { l.CursorDown1(arg(params, 0, 1)) })
	case 'F':
		s.emit("cursor_up1", func(l Listener) { l.CursorUp1(arg(params, 0, 1)) })
	case 'G', '\'':
		s.emit("cursor_to_column", func(l Listener) { l.CursorToColumn(arg(params, 0, 1)) })
	case 'H', 'f':
		s.emit("cursor_position", func(l Listener) { l.CursorPosition(arg(params, 0, 1), arg(params, 1, 1)) })
	case 'J':
		s.emit("erase_in_display", func(l Listener) { l.EraseInDisplay(arg(params, 0, 0)) })
	case 'K':
		s.emit("erase_in_line", func(l Listener) { l.EraseInLine(arg(params, 0, 0)) })
	case 'L':
		s.emit("insert_lines", func(l Listener) { l.InsertLines(arg(params, 0, 1)) })
	case 'M':
		s.emit("delete_lines", func(l Listener) { l.DeleteLines(arg(params, 0, 1)) })
	case 'P':
		s.emit("delete_characters", func(l Listener) { l.DeleteCharacters(arg(params, 0, 1)) })
	case 'X':
		s.emit("erase_characters", func(l Listener) { l.EraseCharacters(arg(params, 0, 1)) })
	case 'd':
		s.emit("cursor_to_line", func(l Listener) { l.CursorToLine(arg(params, 0, 1)) })
	case 'e':
		s.emit("cursor_down", func(l Listener) { l.CursorDown(arg(params, 0, 1)) })
	case 'g':
		s.emit("clear_tab_stop", func(l Listener) { l.ClearTabStop(arg(params, 0, 0)) })
	case 'h':
		s.emit("set_mode", func(l Listener) { l.SetMode(private, params) })
	case 'l':
		s.emit("reset_mode", func(l Listener) { l.ResetMode(private, params) })
	case 'm':
		s.emit("select_graphic_rendition", func(l Listener) { l.SelectGraphicRendition(params) })
	case 'r':
		s.emit("set_margins", func(l Listener) { l.SetMargins(arg(params, 0, 1), arg(params, 1, 0)) })
	case 'c':
		s.emit("report_device_attributes", func(l Listener) { l.ReportDeviceAttributes() })
	case 'n':
		s.emit("report_device_status", func(l Listener) { l.ReportDeviceStatus(arg(params, 0, 0)) })
	default:
		s.debug("csi", byte(r))
	}
}

// arg returns params[i] if present and non-zero, otherwise def — the
// "missing parameter is 0, re-defaulted by the operation" rule from the
// parameter semantics.
func arg(params []int, i, def int) int {
	if i >= len(params) {
		return def
	}
	if params[i] == 0 {
		return def
	}
	return clampParam(params[i])
}
