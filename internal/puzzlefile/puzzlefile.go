// Package puzzlefile is the compact JSON serialization adapter for batches
// of generated puzzles: the format cmd/generate writes and the HTTP
// transport layer reads back, adapted from the reference service's
// internal/puzzles/loader.go (CompactPuzzle/PuzzleFile) to store the output
// of *this* generator instead of a difficulty-tiered DP carver.
package puzzlefile

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/arlobridge/sudoku-engine/pkg/constants"
	"github.com/arlobridge/sudoku-engine/pkg/sudoku"
)

// Puzzle stores one generated puzzle in minimal form: its id, the solved
// grid, and the indices of the cells kept as givens in the minimal unique
// puzzle produced alongside it.
type Puzzle struct {
	ID       string `json:"id"`
	Solution string `json:"solution"` // TotalCells-char line format
	Givens   []int  `json:"givens"`   // cell indices kept from the solution
}

// File is the top-level structure of the JSON puzzle store.
type File struct {
	Version int      `json:"version"`
	Count   int      `json:"count"`
	Puzzles []Puzzle `json:"puzzles"`
}

const fileVersion = 1

// NewPuzzle packages a generated solution/puzzle pair with a fresh id.
func NewPuzzle(solution, puzzle sudoku.Sudoku) Puzzle {
	grid := puzzle.Bytes()
	givens := make([]int, 0, constants.TotalCells)
	for i, v := range grid {
		if v != 0 {
			givens = append(givens, i)
		}
	}
	return Puzzle{
		ID:       uuid.NewString(),
		Solution: solution.String(),
		Givens:   givens,
	}
}

// Save writes puzzles to path as a File.
func Save(path string, puzzles []Puzzle) error {
	file := File{Version: fileVersion, Count: len(puzzles), Puzzles: puzzles}
	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("puzzlefile: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("puzzlefile: write %s: %w", path, err)
	}
	return nil
}

// Store is an in-memory, read-only view of a loaded puzzle file, safe for
// concurrent reads.
type Store struct {
	mu      sync.RWMutex
	puzzles []Puzzle
}

// Load reads puzzles from path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: read %s: %w", path, err)
	}
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("puzzlefile: parse %s: %w", path, err)
	}
	return &Store{puzzles: file.Puzzles}, nil
}

// NewStoreFromPuzzles builds a Store directly, for tests.
func NewStoreFromPuzzles(puzzles []Puzzle) *Store {
	return &Store{puzzles: puzzles}
}

// Count returns the number of puzzles in the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.puzzles)
}

// Get returns the puzzle at index.
func (s *Store) Get(index int) (Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.puzzles) {
		return Puzzle{}, fmt.Errorf("puzzlefile: index %d out of range (0-%d)", index, len(s.puzzles)-1)
	}
	return s.puzzles[index], nil
}

// GetBySeed deterministically maps seed to a puzzle index via an FNV hash,
// the same scheme the reference service uses for its daily puzzle.
func (s *Store) GetBySeed(seed string) (Puzzle, error) {
	s.mu.RLock()
	n := len(s.puzzles)
	s.mu.RUnlock()
	if n == 0 {
		return Puzzle{}, fmt.Errorf("puzzlefile: store is empty")
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	idx := int(h.Sum64() % uint64(n)) //nolint:gosec // n is bounded by slice length
	return s.Get(idx)
}

var (
	global     *Store
	globalOnce sync.Once
	globalErr  error
)

// LoadGlobal loads the process-wide puzzle store once.
func LoadGlobal(path string) error {
	globalOnce.Do(func() {
		global, globalErr = Load(path)
	})
	return globalErr
}

// Global returns the process-wide puzzle store, or nil if LoadGlobal was
// never called successfully.
func Global() *Store { return global }

// SetGlobal overrides the process-wide puzzle store, for tests.
func SetGlobal(s *Store) { global = s }
