package vtscreen

import "github.com/mitchellh/hashstructure/v2"

// checksumState is the subset of Screen's fields the invariants govern:
// everything display-visible, excluding the unbounded savepoint stack.
type checksumState struct {
	Grid    [][]Cell
	Cursor  Cursor
	Margins margins
	Modes   ModeSet
	Charset int
}

// Checksum returns a structural hash of the grid, cursor, margins, mode
// set and charset selection. Two screens with equal checksums are
// byte-for-byte identical in every field these invariants govern. Cheap
// enough for tests and callers to use as a "did anything change" gate
// ahead of a full grid diff.
func (s *Screen) Checksum() uint64 {
	state := checksumState{
		Grid:    s.grid,
		Cursor:  s.cursor,
		Margins: s.margins,
		Modes:   s.modes,
		Charset: s.charset,
	}
	sum, err := hashstructure.Hash(state, hashstructure.FormatV2, nil)
	if err != nil {
		// hashstructure only fails on unsupported field types, which
		// checksumState does not contain; treat as unreachable.
		return 0
	}
	return sum
}
