package vtscreen

import (
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// margins is the inclusive top/bottom scrolling region.
type margins struct {
	top    int
	bottom int
}

// Screen is the grid model: it owns the cell grid, cursor, scroll margins,
// mode flags, tab stops, character-set state and a save/restore stack, and
// implements every operation Stream dispatches. Screen implements Listener
// in full.
type Screen struct {
	columns, lines int
	grid           [][]Cell
	cursor         Cursor

	margins margins
	modes   ModeSet
	tabs    map[int]bool

	g0, g1  charsetTable
	charset int // 0 or 1, selects g0/g1

	saved savepointStack

	title    string
	iconName string

	response io.Writer
	logger   *slog.Logger
}

// ScreenOption configures a Screen at construction time.
type ScreenOption func(*Screen)

// WithResponseWriter sets the writer device-status/device-attribute
// reports are written to. Without one, those reports are silently
// discarded — Screen performs no I/O of its own by default.
func WithResponseWriter(w io.Writer) ScreenOption {
	return func(s *Screen) { s.response = w }
}

// WithLogger overrides the logger used for Screen's own diagnostics
// (currently none emit through Screen directly; Stream owns the Debug
// event's logging). Kept symmetric with Stream.SetLogger for callers that
// construct both together.
func WithLogger(logger *slog.Logger) ScreenOption {
	return func(s *Screen) { s.logger = logger }
}

// NewScreen constructs a Screen of the given size, reset to its initial
// state: default-filled grid, cursor home, full-screen margins, tab stops
// every 8 columns, G0/G1 set to LAT1, DECAWM and DECTCEM on.
func NewScreen(columns, lines int, opts ...ScreenOption) *Screen {
	if columns < 1 {
		columns = 1
	}
	if lines < 1 {
		lines = 1
	}
	s := &Screen{
		columns: columns,
		lines:   lines,
		logger:  slog.Default(),
	}
	s.Reset()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Listener = (*Screen)(nil)

// Columns and Lines return the current grid dimensions.
func (s *Screen) Columns() int { return s.columns }
func (s *Screen) Lines() int   { return s.lines }

// CursorState returns the current cursor by value.
func (s *Screen) CursorState() Cursor { return s.cursor }

// Modes returns the active mode set. The returned map is a defensive copy.
func (s *Screen) Modes() ModeSet { return s.modes.clone() }

// Title returns the window title last set via an OSC 0 or OSC 2 sequence.
func (s *Screen) Title() string { return s.title }

// IconName returns the icon name last set via an OSC 0 or OSC 1 sequence.
func (s *Screen) IconName() string { return s.iconName }

// Display renders the grid as lines strings of length columns, one per
// row, in visual (top-to-bottom) order.
func (s *Screen) Display() []string {
	out := make([]string, s.lines)
	for y, row := range s.grid {
		var b strings.Builder
		for _, c := range row {
			if c.Data == "" {
				b.WriteByte(' ')
			} else {
				b.WriteString(c.Data)
			}
		}
		out[y] = b.String()
	}
	return out
}

// CellAt returns the cell at (col, row).
func (s *Screen) CellAt(col, row int) Cell {
	return s.grid[row][col]
}

func newGrid(lines, columns int) [][]Cell {
	grid := make([][]Cell, lines)
	for y := range grid {
		row := make([]Cell, columns)
		for x := range row {
			row[x] = DefaultCell
		}
		grid[y] = row
	}
	return grid
}

func defaultTabs(columns int) map[int]bool {
	tabs := make(map[int]bool)
	for c := 8; c < columns; c += 8 {
		tabs[c] = true
	}
	return tabs
}

// Reset returns the screen to its construction state, preserving
// dimensions. Feeding "ESC c" from any parser state dispatches this.
func (s *Screen) Reset() {
	s.grid = newGrid(s.lines, s.columns)
	s.cursor = newCursor()
	s.margins = margins{top: 0, bottom: s.lines - 1}
	s.modes = newModeSet()
	s.tabs = defaultTabs(s.columns)
	s.g0 = charsetLAT1
	s.g1 = charsetLAT1
	s.charset = 0
	s.saved = nil
}

func (s *Screen) clampCursor() {
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
	if s.cursor.X > s.columns-1 {
		s.cursor.X = s.columns - 1
	}
	if s.cursor.Y < 0 {
		s.cursor.Y = 0
	}
	if s.cursor.Y > s.lines-1 {
		s.cursor.Y = s.lines - 1
	}
}

// homeCursor moves the cursor to the top-left of the current origin
// (margins.top when DECOM is set, absolute row 0 otherwise).
func (s *Screen) homeCursor() {
	s.cursor.X = 0
	s.cursor.Y = 0
	if s.modes.has(private(ModeDECOM)) {
		s.cursor.Y = s.margins.top
	}
}

// --- Cursor motion ---

func (s *Screen) vbounds() (top, bottom int) {
	if s.modes.has(private(ModeDECOM)) {
		return s.margins.top, s.margins.bottom
	}
	return 0, s.lines - 1
}

func (s *Screen) CursorUp(n int) {
	top, _ := s.vbounds()
	s.cursor.Y -= n
	if s.cursor.Y < top {
		s.cursor.Y = top
	}
}

func (s *Screen) CursorDown(n int) {
	_, bottom := s.vbounds()
	s.cursor.Y += n
	if s.cursor.Y > bottom {
		s.cursor.Y = bottom
	}
}

func (s *Screen) CursorForward(n int) {
	s.cursor.X += n
	if s.cursor.X > s.columns-1 {
		s.cursor.X = s.columns - 1
	}
}

func (s *Screen) CursorBack(n int) {
	s.cursor.X -= n
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
}

func (s *Screen) CursorUp1(n int) {
	s.CursorUp(n)
	s.CarriageReturn()
}

func (s *Screen) CursorDown1(n int) {
	s.CursorDown(n)
	s.CarriageReturn()
}

func (s *Screen) CursorToColumn(n int) {
	col := n - 1
	if col < 0 {
		col = 0
	}
	if col > s.columns-1 {
		col = s.columns - 1
	}
	s.cursor.X = col
}

func (s *Screen) CursorToLine(n int) {
	top, bottom := s.vbounds()
	line := n - 1
	if s.modes.has(private(ModeDECOM)) {
		line += s.margins.top
	}
	if line < top {
		line = top
	}
	if line > bottom {
		line = bottom
	}
	s.cursor.Y = line
}

func (s *Screen) CursorPosition(line, col int) {
	top, bottom := s.vbounds()
	origin := s.modes.has(private(ModeDECOM))
	targetLine := line - 1
	if origin {
		targetLine += s.margins.top
		if targetLine < top || targetLine > bottom {
			return
		}
	} else if targetLine < top {
		targetLine = top
	} else if targetLine > bottom {
		targetLine = bottom
	}
	targetCol := col - 1
	if targetCol < 0 {
		targetCol = 0
	}
	if targetCol > s.columns-1 {
		targetCol = s.columns - 1
	}
	s.cursor.Y = targetLine
	s.cursor.X = targetCol
}

// --- Drawing ---

func (s *Screen) Draw(ch rune) {
	table := s.g0
	if s.charset == 1 {
		table = s.g1
	}
	ch = table.translate(ch)

	if isCombining(ch) {
		s.mergeCombining(ch)
		return
	}

	width := runeWidth(ch)
	if width < 1 {
		width = 1
	}

	if s.cursor.X == s.columns {
		if s.modes.has(private(ModeDECAWM)) {
			s.CarriageReturn()
			s.Index()
		} else {
			s.cursor.X -= width
			if s.cursor.X < 0 {
				s.cursor.X = 0
			}
		}
	} else if isWide(ch) && s.cursor.X == s.columns-1 && s.modes.has(private(ModeDECAWM)) {
		// no room left for the second cell of a wide character; wrap first.
		s.CarriageReturn()
		s.Index()
	}

	if s.modes.has(ModeIRM) {
		s.InsertCharacters(width)
	}

	cell := s.cursor.Attrs.styled(normalizedRune(ch))
	s.grid[s.cursor.Y][s.cursor.X] = cell
	if isWide(ch) && s.cursor.X+1 < s.columns {
		// a wide character occupies a stub slot after it, matching the
		// reference implementation's two-cell full-width rendering.
		s.grid[s.cursor.Y][s.cursor.X+1] = s.cursor.Attrs.styled("")
	}
	s.cursor.X += width
	if s.cursor.X > s.columns {
		// a wide character drawn into the last column without auto-wrap
		// still leaves only the ordinary pending-wrap position.
		s.cursor.X = s.columns
	}
}

func normalizedRune(r rune) string {
	return norm.NFC.String(string(r))
}

// mergeCombining folds a zero-width combining rune into the cell just
// before the cursor, matching the reference implementation's NFC-merge
// behavior for combining marks.
func (s *Screen) mergeCombining(r rune) {
	x, y := s.cursor.X, s.cursor.Y
	if x >= s.columns {
		x = s.columns - 1
	} else {
		x--
	}
	if x < 0 {
		return
	}
	cell := &s.grid[y][x]
	cell.Data = norm.NFC.String(cell.Data + string(r))
}

// --- Linefeed / index / reverse index ---

func (s *Screen) scrollUp(top, bottom, n int) {
	for i := 0; i < n; i++ {
		copy(s.grid[top:bottom], s.grid[top+1:bottom+1])
		s.grid[bottom] = newBlankRow(s.columns)
	}
}

func (s *Screen) scrollDown(top, bottom, n int) {
	for i := 0; i < n; i++ {
		copy(s.grid[top+1:bottom+1], s.grid[top:bottom])
		s.grid[top] = newBlankRow(s.columns)
	}
}

func newBlankRow(columns int) []Cell {
	row := make([]Cell, columns)
	for i := range row {
		row[i] = DefaultCell
	}
	return row
}

func (s *Screen) Index() {
	if s.cursor.Y == s.margins.bottom {
		s.scrollUp(s.margins.top, s.margins.bottom, 1)
		return
	}
	if s.cursor.Y < s.lines-1 {
		s.cursor.Y++
	}
}

func (s *Screen) ReverseIndex() {
	if s.cursor.Y == s.margins.top {
		s.scrollDown(s.margins.top, s.margins.bottom, 1)
		return
	}
	if s.cursor.Y > 0 {
		s.cursor.Y--
	}
}

func (s *Screen) LineFeed() {
	s.Index()
	if s.modes.has(ModeLNM) {
		s.CarriageReturn()
	}
}

// --- Insertion and deletion ---

func (s *Screen) InsertLines(n int) {
	if s.cursor.Y < s.margins.top || s.cursor.Y > s.margins.bottom {
		return
	}
	n = clampCount(n, s.margins.bottom-s.cursor.Y+1)
	for i := 0; i < n; i++ {
		copy(s.grid[s.cursor.Y+1:s.margins.bottom+1], s.grid[s.cursor.Y:s.margins.bottom])
		s.grid[s.cursor.Y] = blankRowStyled(s.columns, s.cursor.Attrs)
	}
	s.CarriageReturn()
}

func (s *Screen) DeleteLines(n int) {
	if s.cursor.Y < s.margins.top || s.cursor.Y > s.margins.bottom {
		return
	}
	n = clampCount(n, s.margins.bottom-s.cursor.Y+1)
	for i := 0; i < n; i++ {
		copy(s.grid[s.cursor.Y:s.margins.bottom], s.grid[s.cursor.Y+1:s.margins.bottom+1])
		s.grid[s.margins.bottom] = blankRowStyled(s.columns, s.cursor.Attrs)
	}
	s.CarriageReturn()
}

func blankRowStyled(columns int, style Cell) []Cell {
	row := make([]Cell, columns)
	for i := range row {
		row[i] = style.styled(" ")
	}
	return row
}

func clampCount(n, max int) int {
	if n > max {
		return max
	}
	if n < 0 {
		return 0
	}
	return n
}

func (s *Screen) InsertCharacters(n int) {
	row := s.grid[s.cursor.Y]
	n = clampCount(n, s.columns-s.cursor.X)
	copy(row[s.cursor.X+n:], row[s.cursor.X:s.columns-n])
	for i := 0; i < n; i++ {
		row[s.cursor.X+i] = s.cursor.Attrs.styled(" ")
	}
}

func (s *Screen) DeleteCharacters(n int) {
	row := s.grid[s.cursor.Y]
	n = clampCount(n, s.columns-s.cursor.X)
	copy(row[s.cursor.X:s.columns-n], row[s.cursor.X+n:])
	for i := s.columns - n; i < s.columns; i++ {
		row[i] = s.cursor.Attrs.styled(" ")
	}
}

func (s *Screen) EraseCharacters(n int) {
	row := s.grid[s.cursor.Y]
	n = clampCount(n, s.columns-s.cursor.X)
	for i := 0; i < n; i++ {
		row[s.cursor.X+i] = s.cursor.Attrs.styled(" ")
	}
}

// --- Erase in line / display ---

func (s *Screen) EraseInLine(mode int) {
	row := s.grid[s.cursor.Y]
	from, to := 0, s.columns-1
	switch mode {
	case 0:
		from = s.cursor.X
	case 1:
		to = s.cursor.X
	case 2:
		// whole line
	default:
		return
	}
	for i := from; i <= to; i++ {
		row[i] = s.cursor.Attrs.styled(" ")
	}
}

func (s *Screen) EraseInDisplay(mode int) {
	switch mode {
	case 0:
		for y := s.cursor.Y + 1; y < s.lines; y++ {
			s.grid[y] = blankRowStyled(s.columns, s.cursor.Attrs)
		}
		s.EraseInLine(0)
	case 1:
		for y := 0; y < s.cursor.Y; y++ {
			s.grid[y] = blankRowStyled(s.columns, s.cursor.Attrs)
		}
		s.EraseInLine(1)
	case 2:
		for y := 0; y < s.lines; y++ {
			s.grid[y] = blankRowStyled(s.columns, s.cursor.Attrs)
		}
	default:
		return
	}
}

// --- Tabs ---

func (s *Screen) Tab() {
	for x := s.cursor.X + 1; x < s.columns; x++ {
		if s.tabs[x] {
			s.cursor.X = x
			return
		}
	}
	s.cursor.X = s.columns - 1
}

func (s *Screen) SetTabStop() {
	s.tabs[s.cursor.X] = true
}

func (s *Screen) ClearTabStop(mode int) {
	switch mode {
	case 0:
		delete(s.tabs, s.cursor.X)
	case 3:
		s.tabs = make(map[int]bool)
	}
}

// --- Margins ---

func (s *Screen) SetMargins(top, bottom int) {
	t, b := top-1, bottom-1
	if bottom == 0 {
		b = s.lines - 1
	}
	if t < 0 {
		t = 0
	}
	if b > s.lines-1 {
		b = s.lines - 1
	}
	if b-t < 1 {
		return
	}
	s.margins = margins{top: t, bottom: b}
	s.homeCursor()
}

// --- Modes ---

func (s *Screen) applyMode(n int, on bool) {
	if on {
		s.modes.set(n)
	} else {
		s.modes.reset(n)
	}
}

func (s *Screen) setModeNumbers(priv bool, params []int, on bool) {
	for _, n := range params {
		target := n
		if priv {
			target = private(n)
		}
		s.applyMode(target, on)
		s.handleModeSideEffect(n, priv, on)
	}
}

func (s *Screen) handleModeSideEffect(n int, priv bool, on bool) {
	if !priv {
		return
	}
	switch n {
	case ModeDECCOLM:
		if on {
			s.resizeColumns(132)
		} else {
			s.resizeColumns(80)
		}
		s.EraseInDisplay(2)
		s.homeCursor()
	case ModeDECOM:
		s.homeCursor()
	case ModeDECSCNM:
		for y := range s.grid {
			for x := range s.grid[y] {
				s.grid[y][x].Reverse = !s.grid[y][x].Reverse
			}
		}
		s.cursor.Attrs.Reverse = on
	case ModeDECTCEM:
		s.cursor.Hidden = !on
	}
}

func (s *Screen) resizeColumns(columns int) {
	s.Resize(s.lines, columns)
}

func (s *Screen) SetMode(priv bool, params []int) {
	s.setModeNumbers(priv, params, true)
}

func (s *Screen) ResetMode(priv bool, params []int) {
	s.setModeNumbers(priv, params, false)
}

// --- SGR ---

func (s *Screen) SelectGraphicRendition(params []int) {
	style := s.cursor.Attrs
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			style = DefaultCell.styled(style.Data)
		case p == 1:
			style.Bold = true
		case p == 22:
			style.Bold = false
		case p == 3:
			style.Italics = true
		case p == 23:
			style.Italics = false
		case p == 4:
			style.Underscore = true
		case p == 24:
			style.Underscore = false
		case p == 5, p == 6:
			style.Blink = true
		case p == 25:
			style.Blink = false
		case p == 7:
			style.Reverse = true
		case p == 27:
			style.Reverse = false
		case p == 9:
			style.Strikethrough = true
		case p == 29:
			style.Strikethrough = false
		case p >= 30 && p <= 39:
			if p == 38 {
				n, consumed := s.parseExtendedColor(params[i+1:])
				style.Fg = n
				i += consumed
			} else {
				style.Fg = fgANSI[p]
			}
		case p >= 40 && p <= 49:
			if p == 48 {
				n, consumed := s.parseExtendedColor(params[i+1:])
				style.Bg = n
				i += consumed
			} else {
				style.Bg = bgANSI[p]
			}
		case p >= 90 && p <= 97:
			style.Fg = fgAIXTERM[p]
		case p >= 100 && p <= 107:
			style.Bg = bgAIXTERM[p]
		}
	}
	s.cursor.Attrs = style
}

// parseExtendedColor parses the tail of a "38;..."/"48;..." SGR sequence
// (rest excludes the 38/48 itself) and returns the resolved color name/hex
// string plus how many extra parameters it consumed. Malformed sequences
// (missing trailing params) resolve to the default color and consume
// nothing further, per the "nothing is fatal" rule.
func (s *Screen) parseExtendedColor(rest []int) (string, int) {
	if len(rest) == 0 {
		return DefaultColor, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return DefaultColor, len(rest)
		}
		return colorFromIndex(rest[1]), 2
	case 2:
		if len(rest) < 4 {
			return DefaultColor, len(rest)
		}
		return hexColor(rest[1], rest[2], rest[3]), 4
	default:
		return DefaultColor, len(rest)
	}
}

// --- Save/Restore ---

func (s *Screen) SaveCursor() {
	s.saved.push(savepoint{
		cursor:  s.cursor,
		g0:      s.g0,
		g1:      s.g1,
		charset: s.charset,
		origin:  s.modes.has(private(ModeDECOM)),
		wrap:    s.modes.has(private(ModeDECAWM)),
	})
}

func (s *Screen) RestoreCursor() {
	sp, ok := s.saved.pop()
	if !ok {
		s.applyMode(private(ModeDECOM), false)
		s.homeCursor()
		return
	}
	s.cursor = sp.cursor
	s.g0 = sp.g0
	s.g1 = sp.g1
	s.charset = sp.charset
	s.applyMode(private(ModeDECOM), sp.origin)
	s.applyMode(private(ModeDECAWM), sp.wrap)
	s.clampCursor()
}

// --- Charset ---

func (s *Screen) SetCharset(code rune, mode byte) {
	table := charsetByCode(code)
	if mode == '(' {
		s.g0 = table
	} else {
		s.g1 = table
	}
}

func (s *Screen) ShiftOut() { s.charset = 1 }
func (s *Screen) ShiftIn()  { s.charset = 0 }

// --- Alignment display ---

func (s *Screen) AlignmentDisplay() {
	for y := range s.grid {
		for x := range s.grid[y] {
			s.grid[y][x] = DefaultCell.styled("E")
		}
	}
}

// --- Window title ---

func (s *Screen) SetTitle(title string)   { s.title = title }
func (s *Screen) SetIconName(name string) { s.iconName = name }

// --- Bell / backspace / carriage return ---

func (s *Screen) Bell() {}

func (s *Screen) Backspace() {
	s.CursorBack(1)
}

func (s *Screen) CarriageReturn() {
	s.cursor.X = 0
}

// --- Resize ---

// Resize grows or shrinks the grid to newLines x newColumns. Shrinking
// drops rows from the bottom and columns from the left; growing appends
// blank rows at the bottom and blank columns at the right, all using the
// default style. Margins reset to full screen and DECOM clears.
func (s *Screen) Resize(newLines, newColumns int) {
	if newLines < 1 {
		newLines = 1
	}
	if newColumns < 1 {
		newColumns = 1
	}

	grid := newGrid(newLines, newColumns)
	copyLines := min(newLines, s.lines)
	copyColumns := min(newColumns, s.columns)
	srcColOffset := 0
	if s.columns > newColumns {
		srcColOffset = s.columns - newColumns
	}
	for y := 0; y < copyLines; y++ {
		copy(grid[y][:copyColumns], s.grid[y][srcColOffset:srcColOffset+copyColumns])
	}

	s.grid = grid
	s.lines = newLines
	s.columns = newColumns
	s.margins = margins{top: 0, bottom: newLines - 1}
	s.applyMode(private(ModeDECOM), false)
	s.tabs = defaultTabs(newColumns)
	s.clampCursor()
}

// --- Device reports ---

func (s *Screen) ReportDeviceAttributes() {
	s.write("\x1b[?6c")
}

func (s *Screen) ReportDeviceStatus(mode int) {
	switch mode {
	case 5:
		s.write("\x1b[0n")
	case 6:
		s.write("\x1b[" + itoa(s.cursor.Y+1) + ";" + itoa(s.cursor.X+1) + "R")
	}
}

func (s *Screen) write(str string) {
	if s.response == nil {
		return
	}
	_, _ = s.response.Write([]byte(str))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// --- Debug ---

func (s *Screen) Debug(event string, params []int, b byte) {}
