// Package rng provides the bounded-integer random source the solver package
// consumes (internal/solver.Source). No ecosystem RNG library in the
// retrieved dependency pack offers a seedable, bounded integer draw beyond
// what math/rand already does, so this thin wrapper is standard library all
// the way down -- see DESIGN.md.
package rng

import "math/rand"

// New returns a *rand.Rand seeded with seed. It satisfies
// internal/solver.Source directly (Intn(n int) int).
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Shared returns a source seeded from the process-global generator, for
// callers (like cmd/server) that don't need a reproducible seed.
func Shared() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}
