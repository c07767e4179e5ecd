package server

import (
	"net/http"
	"time"

	"sudoku_engine_go/internal/generator"
	"sudoku_engine_go/internal/hint"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

type generateRequest struct {
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decode(w, r, &req) {
		return
	}

	difficulty := types.Medium
	if req.Difficulty != "" {
		var err error
		if difficulty, err = types.ParseDifficulty(req.Difficulty); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	puzzle, err := generator.NewSeeded(seed).NewPuzzle(difficulty)
	if err != nil {
		s.log.WithError(err).Error("puzzle generation failed")
		s.writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}
	s.writeJSON(w, http.StatusOK, puzzle)
}

type placeRequest struct {
	Grid  types.Grid `json:"grid"`
	Row   int        `json:"row"`
	Col   int        `json:"col"`
	Value int        `json:"value"`
}

type placeResponse struct {
	Valid bool `json:"valid"`
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !inBounds(req.Row, req.Col) {
		s.writeError(w, http.StatusBadRequest, "row and col must be between 0 and 8")
		return
	}
	if req.Value < 1 || req.Value > types.Size {
		s.writeError(w, http.StatusBadRequest, "value must be between 1 and 9")
		return
	}

	valid := validator.IsValidPlacement(&req.Grid, req.Row, req.Col, req.Value)
	s.writeJSON(w, http.StatusOK, placeResponse{Valid: valid})
}

type gridRequest struct {
	Grid types.Grid `json:"grid"`
}

type conflictsResponse struct {
	Conflicts []types.CellPos `json:"conflicts"`
	Count     int             `json:"count"`
}

func (s *Server) handleConflicts(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	if !s.decode(w, r, &req) {
		return
	}
	conflicts := validator.FindAllConflicts(&req.Grid)
	s.writeJSON(w, http.StatusOK, conflictsResponse{
		Conflicts: conflicts.Positions(),
		Count:     conflicts.Len(),
	})
}

type checkResponse struct {
	Solved bool `json:"solved"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, checkResponse{Solved: validator.CheckSolution(&req.Grid)})
}

type hintResponse struct {
	Found       bool            `json:"found"`
	Strategy    string          `json:"strategy,omitempty"`
	Explanation string          `json:"explanation,omitempty"`
	Cells       []types.CellPos `json:"cells,omitempty"`
}

// handleHint forwards the board to the hint service. Any failure,
// including an unconfigured service, is reported as found=false; the
// player simply gets no hint this time.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hint.Request
	if !s.decode(w, r, &req) {
		return
	}

	if s.provider == nil {
		s.writeJSON(w, http.StatusOK, hintResponse{Found: false})
		return
	}

	suggestion, err := s.provider.Suggest(r.Context(), req)
	if err != nil {
		s.log.WithError(err).Debug("hint unavailable")
		s.writeJSON(w, http.StatusOK, hintResponse{Found: false})
		return
	}
	s.writeJSON(w, http.StatusOK, hintResponse{
		Found:       true,
		Strategy:    suggestion.Strategy,
		Explanation: suggestion.Explanation,
		Cells:       suggestion.Cells,
	})
}

func inBounds(row, col int) bool {
	return row >= 0 && row < types.Size && col >= 0 && col < types.Size
}
