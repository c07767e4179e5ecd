// Package hint talks to an external strategy service. The engine itself
// does no strategy reasoning: it sends the board state out and receives
// back a structured suggestion, or nothing. Callers treat every failure as
// "no hint available" rather than as an engine fault.
package hint

import (
	"context"
	"errors"

	"sudoku_engine_go/internal/types"
)

// ErrNoHint reports that the service could not produce a usable
// suggestion for the given board state.
var ErrNoHint = errors.New("no hint available")

// Request is the board state handed to the service: the clue grid the
// puzzle started from and the current grid including player moves. Empty
// cells are zero in both.
type Request struct {
	Initial types.Grid `json:"initial"`
	Current types.Grid `json:"current"`
}

// Suggestion is the service's structured reply: the name of a solving
// strategy, a short explanation, and the cells the player should look at.
type Suggestion struct {
	Strategy    string          `json:"strategy"`
	Explanation string          `json:"explanation"`
	Cells       []types.CellPos `json:"cells"`
}

// Provider produces a suggestion for a board state.
type Provider interface {
	Suggest(ctx context.Context, req Request) (*Suggestion, error)
}
