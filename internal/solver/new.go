package solver

import "github.com/arlobridge/sudoku-engine/internal/geometry"

// New builds a State from an 81-byte grid (0 = empty, 1..9 = clue, row-major)
// by applying each clue through Apply. It returns ErrInvalidClueByte if any
// byte is out of range, or ErrClueConflict if two clues contradict a shared
// house.
func New(grid [geometry.TotalCells]uint8) (*State, error) {
	for _, v := range grid {
		if v > 9 {
			return nil, ErrInvalidClueByte
		}
	}

	s := NewState()
	for c, v := range grid {
		if v == 0 {
			continue
		}
		if s.grid[c] == v {
			continue // already forced by an earlier clue's propagation
		}
		if err := s.Apply(c, int(v)); err != nil {
			return nil, ErrClueConflict
		}
	}
	return s, nil
}
