package server

import (
	"net/http"

	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

// socketMessage is one client message on the live session. Type selects
// the operation: "grid" rescans the whole board, "place" probes a single
// move without committing it.
type socketMessage struct {
	Type  string      `json:"type"`
	Grid  *types.Grid `json:"grid"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Value int         `json:"value"`
}

type socketReply struct {
	Type      string          `json:"type"`
	Conflicts []types.CellPos `json:"conflicts,omitempty"`
	Count     int             `json:"count"`
	Solved    bool            `json:"solved"`
	Valid     bool            `json:"valid"`
	Error     string          `json:"error,omitempty"`
}

// handleSocket runs one live session: the client streams board snapshots
// and gets conflict feedback after every edit, without re-posting to the
// JSON API each time.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	s.log.WithField("remote", conn.RemoteAddr().String()).Info("websocket session started")

	for {
		var msg socketMessage
		if err := conn.ReadJSON(&msg); err != nil {
			s.log.WithError(err).Debug("websocket session ended")
			return
		}
		if err := conn.WriteJSON(s.socketReplyTo(&msg)); err != nil {
			s.log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

func (s *Server) socketReplyTo(msg *socketMessage) socketReply {
	switch msg.Type {
	case "grid":
		if msg.Grid == nil {
			return socketReply{Type: "error", Error: "grid message without a grid"}
		}
		conflicts := validator.FindAllConflicts(msg.Grid)
		return socketReply{
			Type:      "conflicts",
			Conflicts: conflicts.Positions(),
			Count:     conflicts.Len(),
			Solved:    validator.CheckSolution(msg.Grid),
		}
	case "place":
		if msg.Grid == nil {
			return socketReply{Type: "error", Error: "place message without a grid"}
		}
		if !inBounds(msg.Row, msg.Col) || msg.Value < 1 || msg.Value > types.Size {
			return socketReply{Type: "error", Error: "placement out of range"}
		}
		return socketReply{
			Type:  "placement",
			Valid: validator.IsValidPlacement(msg.Grid, msg.Row, msg.Col, msg.Value),
		}
	default:
		return socketReply{Type: "error", Error: "unknown message type: " + msg.Type}
	}
}
