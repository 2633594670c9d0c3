// Package generator implements the randomized board generator (a thin
// wrapper over the solver's randomized search) and the minimal-unique-puzzle
// remover (component E).
package generator

import (
	"github.com/arlobridge/sudoku-engine/internal/geometry"
	"github.com/arlobridge/sudoku-engine/internal/solver"
)

const (
	batchSize  = 20
	pairedEnd  = 50
	uniqueCap  = 2
)

// GenerateFilled returns a random fully-solved grid, using the randomized
// search variant on an empty input.
func GenerateFilled(rnd solver.Source) solver.Grid {
	return solver.SolveRandom(rnd)
}

// GenerateUnique returns a minimal unique puzzle for a freshly generated
// filled board: GenerateFilled composed with Remove.
func GenerateUnique(rnd solver.Source) solver.Grid {
	full := GenerateFilled(rnd)
	return Remove(full, rnd)
}

// Remove generates a minimal unique puzzle from a filled valid grid via
// randomized cell removal with uniqueness checks. If the input grid is
// invalid or is not uniquely solvable, it is returned unchanged: Remove
// cannot fail.
func Remove(grid solver.Grid, rnd solver.Source) solver.Grid {
	if !isUnique(grid) {
		return grid
	}

	order := randomPermutation(rnd)
	puzzle := grid

	batch := order[:batchSize]
	removeBatch(&puzzle, batch)

	pairs := order[batchSize:pairedEnd]
	for i := 0; i+1 < len(pairs); i += 2 {
		removePair(&puzzle, pairs[i], pairs[i+1])
	}

	for _, c := range order[pairedEnd:] {
		removeSingle(&puzzle, c)
	}

	return puzzle
}

// removeBatch blanks all of cells at once and accepts if the result stays
// uniquely solvable; otherwise it falls back to trying each cell on its own
// against the (unmodified) current puzzle.
func removeBatch(puzzle *solver.Grid, cells []int) {
	trial := *puzzle
	for _, c := range cells {
		trial[c] = 0
	}
	if isUnique(trial) {
		*puzzle = trial
		return
	}

	for _, c := range cells {
		removeSingle(puzzle, c)
	}
}

// removePair tries blanking both a and b, then each alone, keeping the
// largest removal that stays uniquely solvable.
func removePair(puzzle *solver.Grid, a, b int) {
	oa, ob := puzzle[a], puzzle[b]

	puzzle[a], puzzle[b] = 0, 0
	if isUnique(*puzzle) {
		return
	}

	puzzle[b] = ob
	if isUnique(*puzzle) {
		return
	}

	puzzle[a], puzzle[b] = oa, 0
	if isUnique(*puzzle) {
		return
	}

	puzzle[a], puzzle[b] = oa, ob
}

// removeSingle blanks c and accepts if the puzzle stays uniquely solvable,
// restoring it otherwise.
func removeSingle(puzzle *solver.Grid, c int) {
	old := puzzle[c]
	puzzle[c] = 0
	if !isUnique(*puzzle) {
		puzzle[c] = old
	}
}

// isUnique reports whether grid has exactly one solution.
func isUnique(grid solver.Grid) bool {
	st, err := solver.New(grid)
	if err != nil {
		return false
	}
	return st.CountAtMost(uniqueCap) == 1
}

// randomPermutation returns a uniform random permutation of 0..80 (a
// Fisher-Yates shuffle driven by rnd).
func randomPermutation(rnd solver.Source) []int {
	perm := make([]int, geometry.TotalCells)
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
