// Package config loads process configuration from environment variables,
// the same env-var-driven shape as the reference service's pkg/config.
package config

import (
	"os"
	"strconv"

	"github.com/arlobridge/sudoku-engine/pkg/constants"
)

// Config holds the settings cmd/server reads at startup. cmd/generate does
// not use it; it takes its settings from command-line flags.
type Config struct {
	Port       string
	PuzzleFile string
	GenWorkers int
}

// Load reads configuration from the environment, falling back to defaults
// for anything unset.
func Load() (*Config, error) {
	workers, err := strconv.Atoi(getEnv("GENERATE_WORKERS", "0"))
	if err != nil {
		workers = 0
	}

	return &Config{
		Port:       getEnv("PORT", constants.DefaultPort),
		PuzzleFile: getEnv("PUZZLE_FILE", "puzzles.json"),
		GenWorkers: workers,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
