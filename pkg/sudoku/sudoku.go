// Package sudoku is the thin public facade over the solver, generator,
// shuffle and format packages: the "Sudoku" type and its operations, the
// only part of this module most callers should need to import directly.
package sudoku

import (
	"fmt"

	"github.com/arlobridge/sudoku-engine/internal/generator"
	"github.com/arlobridge/sudoku-engine/internal/geometry"
	"github.com/arlobridge/sudoku-engine/internal/shuffle"
	"github.com/arlobridge/sudoku-engine/internal/solver"
	"github.com/arlobridge/sudoku-engine/pkg/format"
)

// Grid is an 81-byte row-major grid: 0 = empty, 1..9 = digit.
type Grid = [geometry.TotalCells]uint8

// Rand is the bounded-integer random source every generation/shuffle
// operation needs. *math/rand.Rand (see pkg/rng) satisfies it directly.
type Rand = solver.Source

// Sudoku is an immutable value wrapping one 81-cell grid.
type Sudoku struct {
	grid Grid
}

// New validates and wraps grid. It rejects a grid whose bytes aren't all in
// 0..9, or whose clues contradict a shared row, column or box.
func New(grid Grid) (Sudoku, error) {
	if _, err := solver.New(grid); err != nil {
		return Sudoku{}, fmt.Errorf("sudoku: %w", err)
	}
	return Sudoku{grid: grid}, nil
}

// ParseLine parses the 81-character line format (see pkg/format).
func ParseLine(s string) (Sudoku, error) {
	g, err := format.ParseLine(s)
	if err != nil {
		return Sudoku{}, err
	}
	return New(g)
}

// ParseBlock parses the 9-row block format (see pkg/format).
func ParseBlock(s string) (Sudoku, error) {
	g, err := format.ParseBlock(s)
	if err != nil {
		return Sudoku{}, err
	}
	return New(g)
}

// String renders the Sudoku in line format.
func (s Sudoku) String() string { return format.FormatLine(s.grid) }

// Block renders the Sudoku in block format.
func (s Sudoku) Block() string { return format.FormatBlock(s.grid) }

// Bytes returns the underlying 81-byte grid. The returned array is a copy.
func (s Sudoku) Bytes() Grid { return s.grid }

// NumClues returns the count of nonzero (given) cells.
func (s Sudoku) NumClues() int {
	n := 0
	for _, v := range s.grid {
		if v != 0 {
			n++
		}
	}
	return n
}

// IsSolved reports whether every cell is filled. An invalid grid can never
// reach this state through New, so this is equivalent to "is a solution".
func (s Sudoku) IsSolved() bool {
	for _, v := range s.grid {
		if v == 0 {
			return false
		}
	}
	return true
}

// CountAtMost returns min(limit, the true number of solutions).
func (s Sudoku) CountAtMost(limit int) int {
	st, err := solver.New(s.grid)
	if err != nil {
		return 0
	}
	return st.CountAtMost(limit)
}

// IsUniquelySolvable reports whether the puzzle has exactly one solution.
func (s Sudoku) IsUniquelySolvable() bool {
	return s.CountAtMost(2) == 1
}

// EnumerateAtMost writes up to len(out) solutions into out and continues
// counting, without writing, up to limit. It returns the total number found.
func (s Sudoku) EnumerateAtMost(out []Grid, limit int) int {
	st, err := solver.New(s.grid)
	if err != nil {
		return 0
	}
	return st.EnumerateAtMost(out, limit)
}

// SolveOne returns a solution to s, or ok == false if none exists. If s has
// multiple solutions, one of them is returned; which one is an
// implementation detail, not part of the public contract.
func (s Sudoku) SolveOne() (solution Sudoku, ok bool) {
	var buf [1]Grid
	if s.EnumerateAtMost(buf[:], 1) != 1 {
		return Sudoku{}, false
	}
	return Sudoku{grid: buf[0]}, true
}

// SolveUnique returns the solution to s if and only if s has exactly one.
func (s Sudoku) SolveUnique() (solution Sudoku, ok bool) {
	var buf [2]Grid
	if s.EnumerateAtMost(buf[:], 2) != 1 {
		return Sudoku{}, false
	}
	return Sudoku{grid: buf[0]}, true
}

// Shuffle applies a set of equivalence-preserving transforms and returns
// the result: digit relabeling, band/stack permutation, in-band/in-stack
// row/column permutation, and a coin-flip transpose.
func (s Sudoku) Shuffle(rnd Rand) Sudoku {
	return Sudoku{grid: shuffle.Apply(s.grid, rnd)}
}

// GenerateFilled returns a random fully-solved grid.
func GenerateFilled(rnd Rand) Sudoku {
	return Sudoku{grid: generator.GenerateFilled(rnd)}
}

// GenerateUnique returns a minimal unique puzzle: GenerateFilled composed
// with the randomized-removal puzzle remover.
func GenerateUnique(rnd Rand) Sudoku {
	return Sudoku{grid: generator.GenerateUnique(rnd)}
}

// Remove generates a minimal unique puzzle with the same solution as s,
// via randomized cell removal. s must already be fully solved; if it is
// not uniquely solvable, it is returned unchanged.
func (s Sudoku) Remove(rnd Rand) Sudoku {
	return Sudoku{grid: generator.Remove(s.grid, rnd)}
}
