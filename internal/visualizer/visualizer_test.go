package visualizer

import (
	"strings"
	"testing"

	"sudoku_engine_go/internal/types"
)

func TestRenderLayout(t *testing.T) {
	var g types.Grid
	g.Set(0, 0, 5)
	g.Set(0, 4, 7)
	g.Set(8, 8, 9)

	out := New(&g).Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// 9 value rows plus 4 border rows.
	if len(lines) != 13 {
		t.Fatalf("render has %d lines, want 13", len(lines))
	}
	if lines[0] != "┌───────┬───────┬───────┐" {
		t.Errorf("unexpected top border: %q", lines[0])
	}
	if lines[1] != "│ 5 . . │ . 7 . │ . . . │" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[4] != "├───────┼───────┼───────┤" {
		t.Errorf("unexpected separator: %q", lines[4])
	}
	if lines[11] != "│ . . . │ . . . │ . . 9 │" {
		t.Errorf("unexpected last row: %q", lines[11])
	}
	if lines[12] != "└───────┴───────┴───────┘" {
		t.Errorf("unexpected bottom border: %q", lines[12])
	}
}

func TestRenderHighlights(t *testing.T) {
	var g types.Grid
	g.Set(0, 0, 7)
	g.Set(0, 3, 7)

	cells := types.NewConflictSet()
	cells.Add(types.CellPos{Row: 0, Col: 0})
	cells.Add(types.CellPos{Row: 0, Col: 3})

	out := New(&g).Highlight(cells).Render()
	if got := strings.Count(out, highlightColor); got != 2 {
		t.Errorf("render contains %d highlight starts, want 2", got)
	}
	if got := strings.Count(out, colorReset); got != 2 {
		t.Errorf("render contains %d highlight resets, want 2", got)
	}

	plain := New(&g).Render()
	if strings.Contains(plain, highlightColor) {
		t.Error("plain render contains highlight codes")
	}
}
