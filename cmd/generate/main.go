// Command generate batch-produces minimal unique puzzles into a JSON puzzle
// file, using a worker pool sized to the machine the same way the reference
// service's cmd/generate does.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arlobridge/sudoku-engine/internal/puzzlefile"
	"github.com/arlobridge/sudoku-engine/pkg/constants"
	"github.com/arlobridge/sudoku-engine/pkg/rng"
	"github.com/arlobridge/sudoku-engine/pkg/sudoku"
)

func main() {
	count := flag.Int("n", 1000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	workers := flag.Int("w", constants.AutoWorkers, "Number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "Starting seed value")
	flag.Parse()

	if *workers <= constants.AutoWorkers {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	puzzles := make([]puzzlefile.Puzzle, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				fmt.Printf("  Progress: %d/%d (%.1f/sec)\n", g, *count, rate)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range work {
				rnd := rng.New(*startSeed + int64(idx))
				full := sudoku.GenerateFilled(rnd)
				puzzle := full.Remove(rnd)
				puzzles[idx] = puzzlefile.NewPuzzle(full, puzzle)
				atomic.AddInt64(&generated, 1)
			}
		}(w)
	}
	wg.Wait()
	close(done)

	if err := puzzlefile.Save(*output, puzzles); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d puzzles to %s in %s\n", *count, *output, time.Since(start).Round(time.Millisecond))
}
