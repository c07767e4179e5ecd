package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"sudoku_engine_go/internal/hint"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeProvider is a canned hint.Provider for handler tests.
type fakeProvider struct {
	suggestion *hint.Suggestion
	err        error
}

func (f *fakeProvider) Suggest(ctx context.Context, req hint.Request) (*hint.Suggestion, error) {
	return f.suggestion, f.err
}

func newTestServer(t *testing.T, provider hint.Provider) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(provider, quietLogger()).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
	return resp.StatusCode
}

func solvedGrid() types.Grid {
	return types.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
}

func TestHandleGenerate(t *testing.T) {
	ts := newTestServer(t, nil)

	var puzzle types.Puzzle
	status := postJSON(t, ts.URL+"/api/generate",
		map[string]any{"difficulty": "easy", "seed": 7}, &puzzle)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if got := puzzle.Grid.CountFilled(); got != types.Easy.Clues() {
		t.Errorf("puzzle has %d clues, want %d", got, types.Easy.Clues())
	}
	if !validator.CheckSolution(&puzzle.Solution) {
		t.Error("returned solution is not valid")
	}
	if puzzle.Grid != puzzle.Initial {
		t.Error("fresh puzzle grid differs from initial")
	}

	// Same seed, same puzzle.
	var again types.Puzzle
	postJSON(t, ts.URL+"/api/generate", map[string]any{"difficulty": "easy", "seed": 7}, &again)
	if again.Grid != puzzle.Grid {
		t.Error("same seed returned a different puzzle")
	}
}

func TestHandleGenerateRejectsUnknownDifficulty(t *testing.T) {
	ts := newTestServer(t, nil)
	status := postJSON(t, ts.URL+"/api/generate", map[string]any{"difficulty": "nightmare"}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestHandlersRequirePost(t *testing.T) {
	ts := newTestServer(t, nil)
	for _, path := range []string{"/api/generate", "/api/place", "/api/conflicts", "/api/check", "/api/hint"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("GET %s status = %d, want 405", path, resp.StatusCode)
		}
	}
}

func TestHandlePlace(t *testing.T) {
	ts := newTestServer(t, nil)

	var grid types.Grid
	grid.Set(0, 0, 7)

	var resp placeResponse
	postJSON(t, ts.URL+"/api/place",
		map[string]any{"grid": grid, "row": 0, "col": 5, "value": 7}, &resp)
	if resp.Valid {
		t.Error("placement in a row with the same value reported valid")
	}

	postJSON(t, ts.URL+"/api/place",
		map[string]any{"grid": grid, "row": 4, "col": 4, "value": 7}, &resp)
	if !resp.Valid {
		t.Error("unrelated placement reported invalid")
	}
}

func TestHandlePlaceValidatesInput(t *testing.T) {
	ts := newTestServer(t, nil)
	var grid types.Grid

	tests := []struct {
		name            string
		row, col, value int
	}{
		{"row too large", 9, 0, 1},
		{"col negative", 0, -1, 1},
		{"value zero", 0, 0, 0},
		{"value too large", 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := postJSON(t, ts.URL+"/api/place",
				map[string]any{"grid": grid, "row": tt.row, "col": tt.col, "value": tt.value}, nil)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
		})
	}
}

func TestHandleConflicts(t *testing.T) {
	ts := newTestServer(t, nil)

	var grid types.Grid
	grid.Set(0, 0, 7)
	grid.Set(0, 3, 7)

	var resp conflictsResponse
	postJSON(t, ts.URL+"/api/conflicts", map[string]any{"grid": grid}, &resp)
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	want := []types.CellPos{{Row: 0, Col: 0}, {Row: 0, Col: 3}}
	for i, cell := range want {
		if resp.Conflicts[i] != cell {
			t.Errorf("conflicts[%d] = %v, want %v", i, resp.Conflicts[i], cell)
		}
	}
}

func TestHandleCheck(t *testing.T) {
	ts := newTestServer(t, nil)

	var resp checkResponse
	postJSON(t, ts.URL+"/api/check", map[string]any{"grid": solvedGrid()}, &resp)
	if !resp.Solved {
		t.Error("solved grid reported unsolved")
	}

	incomplete := solvedGrid()
	incomplete.Set(0, 0, types.Empty)
	postJSON(t, ts.URL+"/api/check", map[string]any{"grid": incomplete}, &resp)
	if resp.Solved {
		t.Error("grid with an empty cell reported solved")
	}
}

func TestHandleHint(t *testing.T) {
	provider := &fakeProvider{suggestion: &hint.Suggestion{
		Strategy:    "hidden pair",
		Explanation: "look at row 3",
		Cells:       []types.CellPos{{Row: 3, Col: 1}, {Row: 3, Col: 7}},
	}}
	ts := newTestServer(t, provider)

	var resp hintResponse
	body := map[string]any{"initial": types.Grid{}, "current": types.Grid{}}
	postJSON(t, ts.URL+"/api/hint", body, &resp)
	if !resp.Found {
		t.Fatal("hint not found despite provider success")
	}
	if resp.Strategy != "hidden pair" || len(resp.Cells) != 2 {
		t.Errorf("unexpected hint payload: %+v", resp)
	}
}

func TestHandleHintFailureMeansNoHint(t *testing.T) {
	body := map[string]any{"initial": types.Grid{}, "current": types.Grid{}}

	t.Run("provider error", func(t *testing.T) {
		ts := newTestServer(t, &fakeProvider{err: errors.New("service down")})
		var resp hintResponse
		status := postJSON(t, ts.URL+"/api/hint", body, &resp)
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if resp.Found {
			t.Error("failed hint lookup reported found")
		}
	})

	t.Run("no provider", func(t *testing.T) {
		ts := newTestServer(t, nil)
		var resp hintResponse
		status := postJSON(t, ts.URL+"/api/hint", body, &resp)
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if resp.Found {
			t.Error("hint reported found without a provider")
		}
	})
}
