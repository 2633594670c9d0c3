// Package http wires the sudoku engine up as a small JSON API, in the same
// gin route-group shape as the reference service's internal/transport/http.
package http

import (
	"hash/fnv"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arlobridge/sudoku-engine/internal/puzzlefile"
	"github.com/arlobridge/sudoku-engine/pkg/constants"
	"github.com/arlobridge/sudoku-engine/pkg/rng"
	"github.com/arlobridge/sudoku-engine/pkg/sudoku"
)

// RegisterRoutes attaches every route this service exposes to r.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.GET("/puzzle/:seed", puzzleHandler)
		api.POST("/generate", generateHandler)
		api.POST("/solve", solveHandler)
		api.POST("/validate", validateHandler)
		api.POST("/shuffle", shuffleHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// seededRand returns a deterministic source for a non-empty seed string
// (via FNV hashing into an int64), or a process-random source otherwise.
func seededRand(seed string) sudoku.Rand {
	if seed == "" {
		return rng.Shared()
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	return rng.New(int64(h.Sum64())) //nolint:gosec // deterministic seed, not a crypto boundary
}

// puzzleHandler returns the pre-generated puzzle whose seed hashes to it, if
// a puzzle store was loaded at startup.
func puzzleHandler(c *gin.Context) {
	store := puzzlefile.Global()
	if store == nil || store.Count() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no puzzles loaded"})
		return
	}

	p, err := store.GetBySeed(c.Param("seed"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       p.ID,
		"solution": p.Solution,
		"givens":   p.Givens,
	})
}

type generateRequest struct {
	// Mode is "filled" for a complete solved board, or "unique" for a
	// minimal uniquely-solvable puzzle derived from one.
	Mode string `json:"mode" binding:"required,oneof=filled unique"`
	Seed string `json:"seed"`
}

func generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rnd := seededRand(req.Seed)
	full := sudoku.GenerateFilled(rnd)

	if req.Mode == "filled" {
		c.JSON(http.StatusOK, gin.H{"grid": full.String()})
		return
	}

	puzzle := full.Remove(rnd)
	c.JSON(http.StatusOK, gin.H{
		"solution": full.String(),
		"puzzle":   puzzle.String(),
		"clues":    puzzle.NumClues(),
	})
}

type solveRequest struct {
	Puzzle string `json:"puzzle" binding:"required,len=81"`
	// Mode is "one" (first solution), "unique" (solution iff exactly one
	// exists) or "count" (count up to Limit).
	Mode  string `json:"mode" binding:"required,oneof=one unique count"`
	Limit int    `json:"limit"`
}

func solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := sudoku.ParseLine(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Mode {
	case "one":
		sol, ok := puzzle.SolveOne()
		if !ok {
			c.JSON(http.StatusOK, gin.H{"solvable": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"solvable": true, "solution": sol.String()})
	case "unique":
		sol, ok := puzzle.SolveUnique()
		c.JSON(http.StatusOK, gin.H{"unique": ok, "solution": optionalSolution(sol, ok)})
	case "count":
		limit := req.Limit
		if limit <= 0 {
			limit = constants.UniquenessCheckLimit
		}
		c.JSON(http.StatusOK, gin.H{"count": puzzle.CountAtMost(limit)})
	}
}

func optionalSolution(s sudoku.Sudoku, ok bool) string {
	if !ok {
		return ""
	}
	return s.String()
}

type validateRequest struct {
	Puzzle string `json:"puzzle" binding:"required,len=81"`
}

func validateHandler(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := sudoku.ParseLine(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"solved":   puzzle.IsSolved(),
		"unique":   puzzle.IsUniquelySolvable(),
		"numClues": puzzle.NumClues(),
	})
}

type shuffleRequest struct {
	Puzzle string `json:"puzzle" binding:"required,len=81"`
	Seed   string `json:"seed"`
}

func shuffleHandler(c *gin.Context) {
	var req shuffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := sudoku.ParseLine(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shuffled := puzzle.Shuffle(seededRand(req.Seed))
	c.JSON(http.StatusOK, gin.H{"grid": shuffled.String()})
}
