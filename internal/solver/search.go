package solver

import "github.com/arlobridge/sudoku-engine/internal/geometry"

// Source is the sole collaborator the search driver needs from a random
// number generator: a uniform integer in [0, n). *math/rand.Rand satisfies
// this directly.
type Source interface {
	Intn(n int) int
}

// Grid is an 81-byte row-major grid: 0 = empty, 1..9 = digit.
type Grid = [geometry.TotalCells]uint8

// CountAtMost returns min(limit, the true number of solutions) of the
// current state. The state is left unchanged: every branch explored is
// restored before the call returns.
func (s *State) CountAtMost(limit int) int {
	counter := 0
	s.search(limit, &counter, nil, nil)
	return counter
}

// EnumerateAtMost writes up to len(out) solutions into out (in search order)
// and continues counting, without writing, up to limit. It returns the total
// number found (bounded by limit).
func (s *State) EnumerateAtMost(out []Grid, limit int) int {
	counter := 0
	s.search(limit, &counter, func(g Grid) {
		if counter <= len(out) {
			out[counter-1] = g
		}
	}, nil)
	return counter
}

// SolveRandom runs the randomized search variant from an empty grid and
// returns the first complete solution found, branching in a uniformly random
// slot order at each guess rather than ascending slot order. Used by the
// board generator; rnd must not be nil.
func SolveRandom(rnd Source) Grid {
	s := NewState()
	counter := 0
	var result Grid
	s.search(1, &counter, func(g Grid) { result = g }, rnd)
	return result
}

// selectGuess implements "most-constrained first": over every (digit, house)
// pair not yet placed, pick the one whose mask has the minimum nonzero
// popcount, tie-broken by lowest house index then lowest digit. ok is false
// iff every (digit, house) pair is already placed, i.e. the grid is full.
func (s *State) selectGuess() (digit, house int, mask Mask, ok bool) {
	best := geometry.GridSize + 1
	for h := 0; h < geometry.NumHouses; h++ {
		for d := 1; d <= 9; d++ {
			if s.placed[d][h] {
				continue
			}
			m := s.masks[d][h]
			cnt := m.popcount()
			if cnt == 0 {
				continue
			}
			if cnt < best {
				best, digit, house, mask, ok = cnt, d, h, m, true
			}
		}
	}
	return
}

// search is the shared depth-first driver. With rnd == nil, branches are
// visited in ascending slot order (the deterministic variant); otherwise in
// a uniformly random permutation of the set bits (the randomized variant).
func (s *State) search(limit int, counter *int, collect func(Grid), rnd Source) {
	if *counter >= limit {
		return
	}

	digit, house, mask, ok := s.selectGuess()
	if !ok {
		// No unplaced (digit, house) pair remains: every house has every
		// digit placed, so the grid is full and valid.
		*counter++
		if collect != nil {
			collect(s.grid)
		}
		return
	}

	cells := geometry.CellsOfHouse(house)
	slots := setSlots(mask)
	if rnd != nil {
		shuffleSlots(slots, rnd)
	}

	for _, slot := range slots {
		cell := cells[slot]
		snap := s.Snapshot()
		if err := s.Apply(cell, digit); err == nil {
			s.search(limit, counter, collect, rnd)
		}
		s.Restore(snap)
		if *counter >= limit {
			return
		}
	}
}

func setSlots(m Mask) []int {
	slots := make([]int, 0, geometry.GridSize)
	for i := 0; i < geometry.GridSize; i++ {
		if m.has(i) {
			slots = append(slots, i)
		}
	}
	return slots
}

// shuffleSlots is a Fisher-Yates shuffle driven by rnd.
func shuffleSlots(a []int, rnd Source) {
	for i := len(a) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
