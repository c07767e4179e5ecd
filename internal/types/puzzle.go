package types

import "encoding/json"

// Puzzle bundles a playable grid with its answer key. Solution and Initial
// never change after creation: Solution is the completed grid the puzzle
// was carved from, Initial is the carved grid before any player move. Grid
// starts identical to Initial and is the only field meant to be edited.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	Initial    Grid       `json:"initial"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// IsClue reports whether (row, col) was filled at creation time. Clue
// cells are not meant to be edited by the player.
func (p *Puzzle) IsClue(row, col int) bool {
	return p.Initial[row][col] != Empty
}

// ToJSON serializes the puzzle including its answer key.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// PuzzleFromJSON decodes a puzzle serialized by ToJSON.
func PuzzleFromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
