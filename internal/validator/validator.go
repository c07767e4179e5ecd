// Package validator implements the mechanical legality rules: placement
// validation, whole-grid conflict scanning and solved-state detection.
// Everything here is a pure function over a grid snapshot.
package validator

import (
	"sudoku_engine_go/internal/types"
)

// BoxIndex returns the index (0..8) of the 3x3 box containing (row, col).
// Boxes are numbered left to right, top to bottom.
func BoxIndex(row, col int) int {
	return (row/types.BoxSize)*types.BoxSize + col/types.BoxSize
}

// IsValidPlacement reports whether value could legally sit at (row, col):
// false exactly when value already occurs elsewhere in the same row,
// column or box. The target cell itself is skipped, so a filled cell is
// never in conflict with its own value.
func IsValidPlacement(g *types.Grid, row, col, value int) bool {
	for i := 0; i < types.Size; i++ {
		if i != col && g[row][i] == value {
			return false
		}
		if i != row && g[i][col] == value {
			return false
		}
	}

	boxRow := (row / types.BoxSize) * types.BoxSize
	boxCol := (col / types.BoxSize) * types.BoxSize
	for r := boxRow; r < boxRow+types.BoxSize; r++ {
		for c := boxCol; c < boxCol+types.BoxSize; c++ {
			if (r != row || c != col) && g[r][c] == value {
				return false
			}
		}
	}
	return true
}

// IsCellRelated reports whether two cells constrain each other, i.e. share
// a row, a column or a box. A cell is related to itself.
func IsCellRelated(a, b types.CellPos) bool {
	return a.Row == b.Row || a.Col == b.Col ||
		BoxIndex(a.Row, a.Col) == BoxIndex(b.Row, b.Col)
}

// FindAllConflicts scans all 27 units and returns every cell involved in a
// duplicate-value violation. When a value occurs twice or more in a unit,
// every occurrence is reported, not just the later ones. Empty cells never
// conflict. A clean grid yields an empty set.
func FindAllConflicts(g *types.Grid) types.ConflictSet {
	conflicts := types.NewConflictSet()

	for r := 0; r < types.Size; r++ {
		byValue := make(map[int][]types.CellPos)
		for c := 0; c < types.Size; c++ {
			if v := g[r][c]; v != types.Empty {
				byValue[v] = append(byValue[v], types.CellPos{Row: r, Col: c})
			}
		}
		markDuplicates(conflicts, byValue)
	}

	for c := 0; c < types.Size; c++ {
		byValue := make(map[int][]types.CellPos)
		for r := 0; r < types.Size; r++ {
			if v := g[r][c]; v != types.Empty {
				byValue[v] = append(byValue[v], types.CellPos{Row: r, Col: c})
			}
		}
		markDuplicates(conflicts, byValue)
	}

	for box := 0; box < types.Size; box++ {
		byValue := make(map[int][]types.CellPos)
		rowStart := (box / types.BoxSize) * types.BoxSize
		colStart := (box % types.BoxSize) * types.BoxSize
		for r := rowStart; r < rowStart+types.BoxSize; r++ {
			for c := colStart; c < colStart+types.BoxSize; c++ {
				if v := g[r][c]; v != types.Empty {
					byValue[v] = append(byValue[v], types.CellPos{Row: r, Col: c})
				}
			}
		}
		markDuplicates(conflicts, byValue)
	}

	return conflicts
}

func markDuplicates(into types.ConflictSet, byValue map[int][]types.CellPos) {
	for _, cells := range byValue {
		if len(cells) < 2 {
			continue
		}
		for _, p := range cells {
			into.Add(p)
		}
	}
}

// CheckSolution reports whether the grid is completely and correctly
// solved: no empty cells and every cell valid against its row, column and
// box. A single empty cell disqualifies the grid.
func CheckSolution(g *types.Grid) bool {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			v := g[r][c]
			if v == types.Empty {
				return false
			}
			if !IsValidPlacement(g, r, c, v) {
				return false
			}
		}
	}
	return true
}
