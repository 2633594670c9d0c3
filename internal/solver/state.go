// Package solver implements the constraint-propagation core: a compact
// bitset-over-cells position set, a naked-single/hidden-single propagator and
// a most-constrained-first backtracking search driver.
//
// A State is built once from an 81-byte grid and then mutated in place by
// Apply and by the search driver's guess/unguess; it carries no state beyond
// the grid, the 243 position masks and a per-(digit, house) placed flag, so
// it is cheap to snapshot by value.
package solver

import "github.com/arlobridge/sudoku-engine/internal/geometry"

// Mask is a 9-bit set over the slots of one house, for one digit.
type Mask uint16

const fullMask Mask = 0x1FF // bits 0..8

func (m Mask) has(slot int) bool { return m&(1<<uint(slot)) != 0 }
func (m Mask) clear(slot int) Mask { return m &^ (1 << uint(slot)) }
func (m Mask) popcount() int {
	n := 0
	for m != 0 {
		m &= m - 1
		n++
	}
	return n
}

// lowestSlot returns the index of the lowest set bit. Panics if m is zero;
// callers only call this after checking m != 0.
func (m Mask) lowestSlot() int {
	for s := 0; s < geometry.GridSize; s++ {
		if m.has(s) {
			return s
		}
	}
	panic("solver: lowestSlot called on empty mask")
}

// State is the sole mutable state of a solve: 243 nine-bit position masks
// (digit, house) -> which of the house's 9 slots still admit that digit, the
// grid those masks are consistent with, and whether each digit has already
// been placed in each house.
type State struct {
	grid   [geometry.TotalCells]uint8
	masks  [10][geometry.NumHouses]Mask // digit 1..9 indexed directly, 0 unused
	placed [10][geometry.NumHouses]bool // placed[d][h]: has digit d been assigned somewhere in house h?
}

// NewState returns an empty state: no clues applied, every mask full.
func NewState() *State {
	s := &State{}
	for d := 1; d <= 9; d++ {
		for h := 0; h < geometry.NumHouses; h++ {
			s.masks[d][h] = fullMask
		}
	}
	return s
}

// Grid returns a copy of the current 81-byte grid (0 = empty, 1..9 = digit).
func (s *State) Grid() [geometry.TotalCells]uint8 { return s.grid }

// Filled reports whether cell c already carries a nonzero digit.
func (s *State) Filled(c int) bool { return s.grid[c] != 0 }

// mask returns the current mask for (digit, house).
func (s *State) mask(d, h int) Mask { return s.masks[d][h] }

// Snapshot and Restore implement a value-copy undo strategy: the whole
// state (grid + masks + placed flags) is under 900 bytes, cheap enough to copy on every search
// branch rather than maintaining an explicit undo trail.
type Snapshot struct {
	grid   [geometry.TotalCells]uint8
	masks  [10][geometry.NumHouses]Mask
	placed [10][geometry.NumHouses]bool
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{grid: s.grid, masks: s.masks, placed: s.placed}
}

func (s *State) Restore(snap Snapshot) {
	s.grid = snap.grid
	s.masks = snap.masks
	s.placed = snap.placed
}

// IsSolved reports whether every cell is filled. Combined with the masks
// being maintained by Apply, a full grid here is necessarily a valid one:
// Apply never lets two peers hold the same digit.
func (s *State) IsSolved() bool {
	for _, v := range s.grid {
		if v == 0 {
			return false
		}
	}
	return true
}
