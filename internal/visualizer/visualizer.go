// Package visualizer renders grids as box-drawn text for terminal output.
package visualizer

import (
	"fmt"
	"strings"

	"sudoku_engine_go/internal/types"
)

const (
	highlightColor = "\033[41m" // red background
	colorReset     = "\033[0m"
)

// Visualizer renders one grid. Highlighting is optional and uses ANSI
// background colors, so it is only readable on a terminal.
type Visualizer struct {
	grid       *types.Grid
	highlights types.ConflictSet
}

func New(grid *types.Grid) *Visualizer {
	return &Visualizer{grid: grid}
}

// Highlight marks the given cells in subsequent renders, typically
// conflict scan results or hint cells. Returns the receiver for chaining.
func (v *Visualizer) Highlight(cells types.ConflictSet) *Visualizer {
	v.highlights = cells
	return v
}

// Render returns the grid as box-drawn text. Empty cells print as dots.
func (v *Visualizer) Render() string {
	var b strings.Builder

	writeBorder(&b, "┌", "┬", "┐")
	for r := 0; r < types.Size; r++ {
		b.WriteString("│ ")
		for c := 0; c < types.Size; c++ {
			b.WriteString(v.cell(r, c))
			b.WriteString(" ")
			if (c+1)%types.BoxSize == 0 && c < types.Size-1 {
				b.WriteString("│ ")
			}
		}
		b.WriteString("│\n")

		if (r+1)%types.BoxSize == 0 && r < types.Size-1 {
			writeBorder(&b, "├", "┼", "┤")
		}
	}
	writeBorder(&b, "└", "┴", "┘")

	return b.String()
}

// Print writes the rendered grid to standard output.
func (v *Visualizer) Print() {
	fmt.Print(v.Render())
}

func (v *Visualizer) cell(row, col int) string {
	text := "."
	if value := v.grid.Get(row, col); value != types.Empty {
		text = fmt.Sprint(value)
	}
	if v.highlights.Has(types.CellPos{Row: row, Col: col}) {
		return highlightColor + text + colorReset
	}
	return text
}

func writeBorder(b *strings.Builder, left, joint, right string) {
	segment := strings.Repeat("─", 2*types.BoxSize+1)
	b.WriteString(left + segment + joint + segment + joint + segment + right + "\n")
}
