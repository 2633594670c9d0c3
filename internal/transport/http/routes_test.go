package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arlobridge/sudoku-engine/internal/puzzlefile"
	"github.com/arlobridge/sudoku-engine/pkg/sudoku"
)

const (
	testUnsolved = "..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3.."
	testSolved   = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"
)

var testPuzzles = []puzzlefile.Puzzle{
	{ID: "fixture-1", Solution: testSolved, Givens: []int{0, 1, 3}},
}

func init() {
	puzzlefile.SetGlobal(puzzlefile.NewStoreFromPuzzles(testPuzzles))
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	if resp["status"] != "ok" {
		t.Errorf("status field = %v, want ok", resp["status"])
	}
	if resp["version"] == nil {
		t.Error("expected a version field")
	}
}

func TestPuzzleHandlerReturnsFixture(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodGet, "/api/puzzle/any-seed", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	resp := decode(t, w)
	if resp["solution"] != testSolved {
		t.Errorf("solution = %v, want %v", resp["solution"], testSolved)
	}
}

func TestPuzzleHandlerIsDeterministicPerSeed(t *testing.T) {
	router := setupRouter()
	w1 := doJSON(t, router, http.MethodGet, "/api/puzzle/repeatable-seed", nil)
	w2 := doJSON(t, router, http.MethodGet, "/api/puzzle/repeatable-seed", nil)

	r1, r2 := decode(t, w1), decode(t, w2)
	if r1["id"] != r2["id"] {
		t.Errorf("same seed returned different puzzle ids: %v vs %v", r1["id"], r2["id"])
	}
}

func TestPuzzleHandlerUnavailableWithEmptyStore(t *testing.T) {
	router := setupRouter()
	puzzlefile.SetGlobal(puzzlefile.NewStoreFromPuzzles(nil))
	defer puzzlefile.SetGlobal(puzzlefile.NewStoreFromPuzzles(testPuzzles))

	w := doJSON(t, router, http.MethodGet, "/api/puzzle/any-seed", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestGenerateHandlerFilledMode(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/generate", map[string]string{
		"mode": "filled",
		"seed": "gen-seed-1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	resp := decode(t, w)
	grid, ok := resp["grid"].(string)
	if !ok || len(grid) != 81 {
		t.Fatalf("grid = %v, want an 81-char string", resp["grid"])
	}
}

func TestGenerateHandlerUniqueMode(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/generate", map[string]string{
		"mode": "unique",
		"seed": "gen-seed-2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	resp := decode(t, w)
	if resp["solution"] == nil || resp["puzzle"] == nil {
		t.Fatalf("expected solution and puzzle fields, got %v", resp)
	}
}

func TestGenerateHandlerRejectsBadMode(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/generate", map[string]string{"mode": "bogus"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGenerateHandlerIsDeterministicPerSeed(t *testing.T) {
	router := setupRouter()
	w1 := doJSON(t, router, http.MethodPost, "/api/generate", map[string]string{"mode": "filled", "seed": "same"})
	w2 := doJSON(t, router, http.MethodPost, "/api/generate", map[string]string{"mode": "filled", "seed": "same"})

	r1, r2 := decode(t, w1), decode(t, w2)
	if r1["grid"] != r2["grid"] {
		t.Error("same seed produced different filled grids")
	}
}

func TestSolveHandlerOneMode(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/solve", map[string]string{
		"puzzle": testUnsolved,
		"mode":   "one",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	resp := decode(t, w)
	if resp["solvable"] != true {
		t.Fatalf("solvable = %v, want true", resp["solvable"])
	}
	if resp["solution"] != testSolved {
		t.Errorf("solution = %v, want %v", resp["solution"], testSolved)
	}
}

func TestSolveHandlerUniqueMode(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/solve", map[string]string{
		"puzzle": testUnsolved,
		"mode":   "unique",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	if resp["unique"] != true {
		t.Errorf("unique = %v, want true", resp["unique"])
	}
}

func TestSolveHandlerCountMode(t *testing.T) {
	router := setupRouter()
	body := map[string]interface{}{
		"puzzle": testUnsolved,
		"mode":   "count",
		"limit":  5,
	}
	w := doJSON(t, router, http.MethodPost, "/api/solve", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	if resp["count"].(float64) != 1 {
		t.Errorf("count = %v, want 1", resp["count"])
	}
}

func TestSolveHandlerRejectsWrongLengthPuzzle(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/solve", map[string]string{
		"puzzle": "123",
		"mode":   "one",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestValidateHandlerReportsSolvedState(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/validate", map[string]string{"puzzle": testSolved})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	if resp["valid"] != true || resp["solved"] != true {
		t.Errorf("expected valid and solved, got %v", resp)
	}
	if resp["numClues"].(float64) != 81 {
		t.Errorf("numClues = %v, want 81", resp["numClues"])
	}
}

func TestValidateHandlerReportsContradiction(t *testing.T) {
	router := setupRouter()
	contradiction := "55" + testUnsolved[2:]
	w := doJSON(t, router, http.MethodPost, "/api/validate", map[string]string{"puzzle": contradiction})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	if resp["valid"] != false {
		t.Errorf("valid = %v, want false", resp["valid"])
	}
}

func TestShuffleHandlerPreservesSolvability(t *testing.T) {
	router := setupRouter()
	w := doJSON(t, router, http.MethodPost, "/api/shuffle", map[string]string{
		"puzzle": testSolved,
		"seed":   "shuffle-seed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d. body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	resp := decode(t, w)
	grid, ok := resp["grid"].(string)
	if !ok || len(grid) != 81 {
		t.Fatalf("grid = %v, want an 81-char string", resp["grid"])
	}
	shuffled, err := sudoku.ParseLine(grid)
	if err != nil {
		t.Fatalf("shuffled grid %q rejected: %v", grid, err)
	}
	if !shuffled.IsSolved() {
		t.Errorf("shuffled grid %q is not solved", grid)
	}
}

func TestShuffleHandlerIsDeterministicPerSeed(t *testing.T) {
	router := setupRouter()
	body := map[string]string{"puzzle": testSolved, "seed": "fixed-shuffle-seed"}
	w1 := doJSON(t, router, http.MethodPost, "/api/shuffle", body)
	w2 := doJSON(t, router, http.MethodPost, "/api/shuffle", body)

	r1, r2 := decode(t, w1), decode(t, w2)
	if r1["grid"] != r2["grid"] {
		t.Error("same seed produced different shuffled grids")
	}
}
