package solver

import "errors"

// ErrConflict is returned by Apply when the asserted entry (or one of the
// forced placements it implies) contradicts the current state. It is
// recovered locally by the caller via Snapshot/Restore during search; it is
// never a user-visible error on its own.
var ErrConflict = errors.New("solver: conflict")

// ErrInvalidClueByte is returned by New when a grid byte is outside 0..9.
var ErrInvalidClueByte = errors.New("solver: grid byte out of range 0..9")

// ErrClueConflict is returned by New when two clues in the input grid
// contradict a row, column or box constraint.
var ErrClueConflict = errors.New("solver: clue conflict")
