// Package shuffle applies a set of equivalence-preserving transforms: a
// random digit relabeling, band/stack permutation, in-band/in-stack
// row/column permutation, and an optional transpose. Every transform
// preserves row/col/box constraints, and therefore preserves both solution
// count and difficulty class.
package shuffle

import "github.com/arlobridge/sudoku-engine/internal/solver"

const nineFactorial = 362880 // 9!

// Apply returns a shuffled copy of grid. rnd must not be nil.
func Apply(grid solver.Grid, rnd solver.Source) solver.Grid {
	g := grid

	shuffleDigits(&g, rnd)
	shuffleBands(&g, rnd)
	shuffleStacks(&g, rnd)
	for band := 0; band < 3; band++ {
		shuffleColsOfStack(&g, rnd, band)
		shuffleRowsOfBand(&g, rnd, band)
	}
	if rnd.Intn(2) == 1 {
		transpose(&g)
	}

	return g
}

// shuffleDigits relabels 1..9 by a uniform random permutation (0, the empty
// cell, is always fixed). Rather than nine bounded draws, it draws a single
// integer in [0, 9!) and decodes it into a permutation by a top-down
// Fisher-Yates pass driven by successive remainders (a Lehmer/factorial
// code).
func shuffleDigits(g *solver.Grid, rnd solver.Source) {
	digits := [10]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	code := rnd.Intn(nineFactorial)
	for n := 9; n >= 1; n-- {
		num := code % n
		code /= n
		digits[n], digits[1+num] = digits[1+num], digits[n]
	}

	for i, v := range g {
		g[i] = uint8(digits[v])
	}
}

func shuffleBands(g *solver.Grid, rnd solver.Source) {
	swapBands(g, 0, rnd.Intn(3))
	swapBands(g, 1, 1+rnd.Intn(2))
}

func shuffleStacks(g *solver.Grid, rnd solver.Source) {
	swapStacks(g, 0, rnd.Intn(3))
	swapStacks(g, 1, 1+rnd.Intn(2))
}

func shuffleRowsOfBand(g *solver.Grid, rnd solver.Source, band int) {
	first := band * 3
	swapRows(g, first, first+rnd.Intn(3))
	swapRows(g, first+1, first+1+rnd.Intn(2))
}

func shuffleColsOfStack(g *solver.Grid, rnd solver.Source, stack int) {
	first := stack * 3
	swapCols(g, first, first+rnd.Intn(3))
	swapCols(g, first+1, first+1+rnd.Intn(2))
}

func swapRows(g *solver.Grid, r1, r2 int) {
	if r1 == r2 {
		return
	}
	start1, start2 := r1*9, r2*9
	for i := 0; i < 9; i++ {
		g[start1+i], g[start2+i] = g[start2+i], g[start1+i]
	}
}

func swapCols(g *solver.Grid, c1, c2 int) {
	if c1 == c2 {
		return
	}
	for row := 0; row < 9; row++ {
		i1, i2 := row*9+c1, row*9+c2
		g[i1], g[i2] = g[i2], g[i1]
	}
}

// swapBands swaps two whole horizontal bands (3-row stripes), row by row.
//
// A faithful port of the reference implementation's shuffle swapped columns
// here instead of rows -- a bug (see original_source/src/sudoku.rs,
// swap_bands): band swaps never touched the rows they claimed to, which both
// produces non-uniform shuffles and leaks the original band layout. This
// implementation swaps rows, as band/stack symmetry requires.
func swapBands(g *solver.Grid, b1, b2 int) {
	if b1 == b2 {
		return
	}
	for inner := 0; inner < 3; inner++ {
		swapRows(g, b1*3+inner, b2*3+inner)
	}
}

func swapStacks(g *solver.Grid, s1, s2 int) {
	if s1 == s2 {
		return
	}
	for inner := 0; inner < 3; inner++ {
		swapCols(g, s1*3+inner, s2*3+inner)
	}
}

// transpose mirrors the grid along its main diagonal: cell (r,c) swaps with
// (c,r) for r < c.
func transpose(g *solver.Grid) {
	for r := 0; r < 9; r++ {
		for c := r + 1; c < 9; c++ {
			i, j := r*9+c, c*9+r
			g[i], g[j] = g[j], g[i]
		}
	}
}
