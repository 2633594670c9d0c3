// Package constants holds the small set of fixed values shared across the
// solver, generator and transport layers.
package constants

// Grid dimensions.
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17 // fewest clues that can ever yield a unique solution
)

// Uniqueness check bound: count_at_most(2) == 1 is how "uniquely solvable"
// is defined throughout this repo.
const UniquenessCheckLimit = 2

// Default HTTP port for cmd/server.
const DefaultPort = "8080"

// Default worker count sentinel for cmd/generate: 0 means "use NumCPU".
const AutoWorkers = 0

// API version reported by the health endpoint.
const APIVersion = "0.1.0"
