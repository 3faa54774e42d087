package vtscreen

import "sync"

// SyncScreen wraps a *Screen with a sync.RWMutex so it can be fed from a
// goroutine other than the one reading Display/CursorState/Modes. Screen
// itself stays unsynchronized and fast; SyncScreen is the optional
// mutex-guarded front, an outer guarded type over an unguarded inner one.
type SyncScreen struct {
	mu     sync.RWMutex
	screen *Screen
}

// NewSyncScreen wraps screen for concurrent use.
func NewSyncScreen(screen *Screen) *SyncScreen {
	return &SyncScreen{screen: screen}
}

// Display acquires a read lock and renders the grid.
func (s *SyncScreen) Display() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen.Display()
}

// CursorState acquires a read lock and returns the cursor.
func (s *SyncScreen) CursorState() Cursor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen.CursorState()
}

// Modes acquires a read lock and returns the mode set.
func (s *SyncScreen) Modes() ModeSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen.Modes()
}

// Checksum acquires a read lock and returns the grid checksum.
func (s *SyncScreen) Checksum() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen.Checksum()
}

// Title acquires a read lock and returns the current window title.
func (s *SyncScreen) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen.Title()
}

// IconName acquires a read lock and returns the current icon name.
func (s *SyncScreen) IconName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen.IconName()
}

var _ Listener = (*SyncScreen)(nil)

func (s *SyncScreen) Draw(ch rune) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Draw(ch)
}
func (s *SyncScreen) Debug(event string, params []int, b byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Debug(event, params, b)
}
func (s *SyncScreen) Bell() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Bell()
}
func (s *SyncScreen) Backspace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Backspace()
}
func (s *SyncScreen) Tab() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Tab()
}
func (s *SyncScreen) LineFeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.LineFeed()
}
func (s *SyncScreen) CarriageReturn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CarriageReturn()
}
func (s *SyncScreen) ShiftOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ShiftOut()
}
func (s *SyncScreen) ShiftIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ShiftIn()
}
func (s *SyncScreen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Reset()
}
func (s *SyncScreen) Index() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Index()
}
func (s *SyncScreen) ReverseIndex() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ReverseIndex()
}
func (s *SyncScreen) SetTabStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetTabStop()
}
func (s *SyncScreen) ClearTabStop(mode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ClearTabStop(mode)
}
func (s *SyncScreen) SaveCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SaveCursor()
}
func (s *SyncScreen) RestoreCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.RestoreCursor()
}
func (s *SyncScreen) AlignmentDisplay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.AlignmentDisplay()
}
func (s *SyncScreen) SetCharset(code rune, mode byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetCharset(code, mode)
}
func (s *SyncScreen) CursorUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorUp(n)
}
func (s *SyncScreen) CursorDown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorDown(n)
}
func (s *SyncScreen) CursorForward(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorForward(n)
}
func (s *SyncScreen) CursorBack(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorBack(n)
}
func (s *SyncScreen) CursorUp1(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorUp1(n)
}
func (s *SyncScreen) CursorDown1(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorDown1(n)
}
func (s *SyncScreen) CursorToColumn(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorToColumn(n)
}
func (s *SyncScreen) CursorToLine(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorToLine(n)
}
func (s *SyncScreen) CursorPosition(line, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.CursorPosition(line, col)
}
func (s *SyncScreen) InsertLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.InsertLines(n)
}
func (s *SyncScreen) DeleteLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.DeleteLines(n)
}
func (s *SyncScreen) InsertCharacters(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.InsertCharacters(n)
}
func (s *SyncScreen) DeleteCharacters(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.DeleteCharacters(n)
}
func (s *SyncScreen) EraseCharacters(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.EraseCharacters(n)
}
func (s *SyncScreen) EraseInLine(mode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.EraseInLine(mode)
}
func (s *SyncScreen) EraseInDisplay(mode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.EraseInDisplay(mode)
}
func (s *SyncScreen) SetMode(private bool, params []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetMode(private, params)
}
func (s *SyncScreen) ResetMode(private bool, params []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ResetMode(private, params)
}
func (s *SyncScreen) SelectGraphicRendition(params []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SelectGraphicRendition(params)
}
func (s *SyncScreen) SetMargins(top, bottom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetMargins(top, bottom)
}
func (s *SyncScreen) ReportDeviceAttributes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ReportDeviceAttributes()
}
func (s *SyncScreen) ReportDeviceStatus(mode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ReportDeviceStatus(mode)
}
func (s *SyncScreen) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetTitle(title)
}
func (s *SyncScreen) SetIconName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetIconName(name)
}
