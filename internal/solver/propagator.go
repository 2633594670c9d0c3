package solver

import "github.com/arlobridge/sudoku-engine/internal/geometry"

// entry is the (cell, digit) pair asserting that cell takes digit.
type entry struct {
	cell, digit int
}

// Apply asserts that cell c takes digit d (1..9), propagating the
// consequences (naked singles, hidden singles) transitively before
// returning. Precondition: c is currently empty.
//
// On a non-nil (conflict) return the state is left in an undefined,
// partially-mutated configuration; the caller must restore from a Snapshot
// taken before calling Apply.
func (s *State) Apply(c, d int) error {
	queue := []entry{{c, d}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		if s.grid[e.cell] == uint8(e.digit) {
			continue // already placed, nothing to do
		}
		if s.grid[e.cell] != 0 {
			return ErrConflict
		}

		houses := geometry.Houses(e.cell)

		// e.digit must still be a live candidate at e.cell in all three of
		// its houses. If a peer elimination already cleared it in one of
		// them, some other cell in that house already settled e.digit: this
		// placement contradicts it.
		for _, h := range houses {
			if !s.masks[e.digit][h].has(slotOf(e.cell, h)) {
				return ErrConflict
			}
		}

		s.grid[e.cell] = uint8(e.digit)

		// Place: remove e.digit as a remaining candidate at this slot (it's
		// now settled, not eliminated-but-possible), and eliminate every
		// other digit at this cell across its houses.
		for _, h := range houses {
			slot := slotOf(e.cell, h)
			s.placed[e.digit][h] = true
			if err := s.clearAndCheck(e.digit, h, slot, &queue); err != nil {
				return err
			}
			for other := 1; other <= 9; other++ {
				if other == e.digit {
					continue
				}
				if err := s.clearAndCheck(other, h, slot, &queue); err != nil {
					return err
				}
			}
		}

		// Peer elimination: e.digit can no longer occur in any peer of
		// e.cell.
		for _, p := range geometry.Peers(e.cell) {
			if s.grid[p] != 0 {
				continue
			}
			for _, h := range geometry.Houses(p) {
				slot := slotOf(p, h)
				if err := s.clearAndCheck(e.digit, h, slot, &queue); err != nil {
					return err
				}
			}
			if nd, ok := s.nakedSingle(p); ok {
				queue = append(queue, entry{p, nd})
			}
		}
	}
	return nil
}

// slotOf is geometry.SlotInHouse but resolves the house kind from the house
// index itself, since Houses() already returns (row, col, box) in that order.
func slotOf(c, h int) int {
	switch {
	case h < geometry.GridSize:
		return geometry.SlotInHouse(c, geometry.KindRow)
	case h < 2*geometry.GridSize:
		return geometry.SlotInHouse(c, geometry.KindCol)
	default:
		return geometry.SlotInHouse(c, geometry.KindBox)
	}
}

// clearAndCheck clears the given slot bit from mask(d, h). If the mask
// becomes zero while digit d is still unplaced in house h, that is a
// contradiction. If it collapses to exactly one bit, the implied placement
// (a hidden single) is enqueued.
func (s *State) clearAndCheck(d, h, slot int, queue *[]entry) error {
	m := s.masks[d][h]
	if !m.has(slot) {
		return nil
	}
	m = m.clear(slot)
	s.masks[d][h] = m

	if m == 0 {
		if !s.placed[d][h] {
			return ErrConflict
		}
		return nil
	}
	if m.popcount() == 1 && !s.placed[d][h] {
		cell := geometry.CellsOfHouse(h)[m.lowestSlot()]
		if s.grid[cell] == 0 {
			*queue = append(*queue, entry{cell, d})
		}
	}
	return nil
}

// nakedSingle reports whether exactly one digit remains possible at cell c:
// a digit is possible there iff its mask still holds the bit at c's slot in
// all three of c's houses.
func (s *State) nakedSingle(c int) (digit int, ok bool) {
	if s.grid[c] != 0 {
		return 0, false
	}
	houses := geometry.Houses(c)
	found := 0
	last := 0
	for d := 1; d <= 9; d++ {
		possible := true
		for _, h := range houses {
			if !s.masks[d][h].has(slotOf(c, h)) {
				possible = false
				break
			}
		}
		if possible {
			found++
			last = d
			if found > 1 {
				return 0, false
			}
		}
	}
	if found == 1 {
		return last, true
	}
	return 0, false
}
