// Package format implements the two textual grid formats the facade
// supports: the single-line 81-character format and the human-readable
// 9-row block format. Grounded on original_source/src/sudoku.rs's
// from_str_line/to_str_line and from_str_block_permissive/display_block --
// this package is the Go equivalent, using sentinel errors and
// fmt.Errorf wrapping throughout, as the rest of this module does.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arlobridge/sudoku-engine/internal/geometry"
)

// Grid is an 81-byte row-major grid: 0 = empty, 1..9 = digit.
type Grid = [geometry.TotalCells]uint8

// ErrNotEnoughCells is returned by ParseLine when s has fewer than 81 valid
// cell characters before a delimiter or the end of input.
var ErrNotEnoughCells = errors.New("format: not enough cells in line input")

// ErrNotEnoughRows is returned by ParseBlock when s has fewer than 9 rows of
// 9 valid cell characters.
var ErrNotEnoughRows = errors.New("format: not enough rows in block input")

func isEmptyRune(r rune) bool { return r == '.' || r == '_' || r == '0' }

func isDigitRune(r rune) bool { return r >= '1' && r <= '9' }

// ParseLine reads a grid from the 81-character line format: '.', '_' or '0'
// for an empty cell, '1'..'9' for a clue, row-major. Parsing stops at the
// 81st valid cell; anything after that (a trailing comment) is ignored.
func ParseLine(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		if n == geometry.TotalCells {
			break
		}
		switch {
		case isEmptyRune(r):
			g[n] = 0
		case isDigitRune(r):
			g[n] = uint8(r - '0')
		default:
			return g, fmt.Errorf("format: invalid character %q at cell %d: %w", r, n, ErrNotEnoughCells)
		}
		n++
	}
	if n != geometry.TotalCells {
		return g, fmt.Errorf("format: only %d of %d cells present: %w", n, geometry.TotalCells, ErrNotEnoughCells)
	}
	return g, nil
}

// FormatLine renders g in the line format: '.' for empty, the digit
// otherwise.
func FormatLine(g Grid) string {
	var b strings.Builder
	b.Grow(geometry.TotalCells)
	for _, v := range g {
		if v == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte('0' + v)
		}
	}
	return b.String()
}

// ParseBlock reads a grid from the block format: one row per line, '.', '_'
// or '0' for empty cells and '1'..'9' for clues; any other character
// (spaces, '|', '-' box separators, comments) is skipped rather than
// rejected. A line contributes a row once 9 valid cell characters have been
// read from it; lines that never reach 9 are skipped entirely. Parsing stops
// once 9 rows have been read.
func ParseBlock(s string) (Grid, error) {
	var g Grid
	row := 0
	for _, line := range strings.Split(s, "\n") {
		col := 0
		for _, r := range line {
			switch {
			case isEmptyRune(r):
				g[row*geometry.GridSize+col] = 0
				col++
			case isDigitRune(r):
				g[row*geometry.GridSize+col] = uint8(r - '0')
				col++
			}
			if col == geometry.GridSize {
				break
			}
		}
		if col == geometry.GridSize {
			row++
		}
		if row == geometry.GridSize {
			return g, nil
		}
	}
	return g, fmt.Errorf("format: only %d of %d rows present: %w", row, geometry.GridSize, ErrNotEnoughRows)
}

// FormatBlock renders g as 9 rows of 9 characters ('_' for empty), a single
// space between box columns and a blank line between box rows.
func FormatBlock(g Grid) string {
	var b strings.Builder
	for cell, v := range g {
		row, col := cell/geometry.GridSize, cell%geometry.GridSize
		switch {
		case col == 3 || col == 6:
			b.WriteByte(' ')
		case col == 0 && (row == 3 || row == 6):
			b.WriteString("\n\n")
		case col == 0:
			b.WriteByte('\n')
		}
		if v == 0 {
			b.WriteByte('_')
		} else {
			b.WriteByte('0' + v)
		}
	}
	return b.String()
}
