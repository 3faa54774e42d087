package vtscreen

// ScrollbackSink receives rows that scroll off the top of a Screen's grid.
// It is not owned by Screen; a caller wires one up as a second Listener on
// the same Stream that feeds the Screen (see AttachScrollback), mirroring
// the reference implementation's HistoryScreen composed over Screen rather
// than a Go type that inherits from it.
type ScrollbackSink interface {
	Push(line []Cell)
	Lines() [][]Cell
	Clear()
}

// RingScrollback is a fixed-capacity in-memory ScrollbackSink. Pushing past
// capacity discards the oldest line.
type RingScrollback struct {
	lines    [][]Cell
	capacity int
}

// NewRingScrollback returns a RingScrollback holding at most capacity
// lines. A capacity of 0 means unlimited.
func NewRingScrollback(capacity int) *RingScrollback {
	return &RingScrollback{capacity: capacity}
}

func (r *RingScrollback) Push(line []Cell) {
	cp := make([]Cell, len(line))
	copy(cp, line)
	r.lines = append(r.lines, cp)
	if r.capacity > 0 && len(r.lines) > r.capacity {
		r.lines = r.lines[len(r.lines)-r.capacity:]
	}
}

func (r *RingScrollback) Lines() [][]Cell {
	return r.lines
}

func (r *RingScrollback) Clear() {
	r.lines = nil
}

var _ ScrollbackSink = (*RingScrollback)(nil)

// scrollbackListener is the Listener half of the scrollback pairing: it
// snapshots the row about to scroll off a Screen before Index or LineFeed
// reach the Screen itself, then does nothing else. It embeds BaseListener
// so it only needs to override the events it cares about.
type scrollbackListener struct {
	BaseListener
	screen *Screen
	sink   ScrollbackSink
}

// snapshot pushes the top-of-region row to sink if the screen's next Index
// (whether reached directly or via LineFeed) is about to scroll it off.
func (l *scrollbackListener) snapshot() {
	if l.screen.margins.top != 0 {
		return // only the primary region has scrollback
	}
	if l.screen.cursor.Y == l.screen.margins.bottom {
		row := l.screen.grid[l.screen.margins.top]
		l.sink.Push(row)
	}
}

func (l *scrollbackListener) Index()    { l.snapshot() }
func (l *scrollbackListener) LineFeed() { l.snapshot() }

// AttachScrollback wires sink to stream as a second listener alongside
// screen, so that lines Screen scrolls off the top of the primary region
// are mirrored into sink. The scrollback listener is inserted ahead of
// every listener already attached to stream (including screen), since
// listeners are dispatched in attach order and the scrollback snapshot
// must be taken before Screen's own Index handler scrolls the grid. Only
// scrolls reached through Index and LineFeed events are mirrored; a scroll
// that Screen.Draw performs itself during an auto-wrap is not captured.
func AttachScrollback(stream *Stream, screen *Screen, sink ScrollbackSink) {
	l := &scrollbackListener{screen: screen, sink: sink}
	stream.listeners = append([]Listener{l}, stream.listeners...)
}

var _ Listener = (*scrollbackListener)(nil)
