// Package types holds the grid model shared by every part of the engine:
// the 9x9 grid itself, cell coordinates, difficulty levels, conflict sets
// and the assembled puzzle. Grids are plain value arrays, so assignment
// copies and callers never share backing storage by accident.
package types

import (
	"encoding/json"
	"errors"
)

const (
	// Size is the edge length of a grid.
	Size = 9
	// BoxSize is the edge length of one sub-box.
	BoxSize = 3
	// Empty marks a cell holding no value.
	Empty = 0
)

// ErrUnknownDifficulty reports a difficulty label that is not one of
// easy, medium or hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Grid is a 9x9 sudoku grid. Cells hold 1..9 or Empty. Rows and columns
// are indexed from 0, row first.
type Grid [Size][Size]int

// CellPos identifies a single cell by row and column, both 0-based.
type CellPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Get returns the value at (row, col).
func (g *Grid) Get(row, col int) int {
	return g[row][col]
}

// Set writes value into (row, col) without any legality check.
func (g *Grid) Set(row, col, value int) {
	g[row][col] = value
}

// Clone returns an independent copy of the grid. Grid is a value array,
// so a plain assignment already copies; Clone exists to make the
// hand-off explicit at call sites that must not alias.
func (g *Grid) Clone() Grid {
	return *g
}

// CountFilled returns the number of non-empty cells.
func (g *Grid) CountFilled() int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

// IsFull reports whether every cell holds a value.
func (g *Grid) IsFull() bool {
	return g.CountFilled() == Size*Size
}

// ToJSON serializes the grid as a 9x9 array of numbers.
func (g *Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// GridFromJSON decodes a grid serialized by ToJSON.
func GridFromJSON(data []byte) (*Grid, error) {
	var g Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
