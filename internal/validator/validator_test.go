package validator

import (
	"testing"

	"sudoku_engine_go/internal/types"
)

// solvedGrid returns a known valid completed grid used as a fixture.
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

func TestBoxIndex(t *testing.T) {
	tests := []struct {
		row, col, box int
	}{
		{0, 0, 0},
		{2, 2, 0},
		{0, 8, 2},
		{4, 4, 4},
		{3, 3, 4},
		{5, 5, 4},
		{8, 0, 6},
		{8, 8, 8},
		{6, 5, 7},
	}
	for _, tt := range tests {
		if got := BoxIndex(tt.row, tt.col); got != tt.box {
			t.Errorf("BoxIndex(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.box)
		}
	}
}

func TestIsValidPlacementDetectsPeers(t *testing.T) {
	var g types.Grid
	g.Set(0, 0, 7)

	tests := []struct {
		name          string
		row, col, val int
		want          bool
	}{
		{"same row", 0, 5, 7, false},
		{"same column", 6, 0, 7, false},
		{"same box", 1, 1, 7, false},
		{"unrelated cell", 4, 4, 7, true},
		{"different value same row", 0, 5, 3, true},
		{"related but diagonal box", 3, 3, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPlacement(&g, tt.row, tt.col, tt.val); got != tt.want {
				t.Errorf("IsValidPlacement(%d, %d, %d) = %v, want %v",
					tt.row, tt.col, tt.val, got, tt.want)
			}
		})
	}
}

func TestIsValidPlacementExcludesTargetCell(t *testing.T) {
	g := solvedGrid()

	// Re-validating every cell against its own value must succeed: the
	// target cell is not its own peer.
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if !IsValidPlacement(&g, r, c, g.Get(r, c)) {
				t.Errorf("cell (%d,%d) conflicts with its own value %d", r, c, g.Get(r, c))
			}
		}
	}
}

func TestIsCellRelated(t *testing.T) {
	cell := func(r, c int) types.CellPos {
		return types.CellPos{Row: r, Col: c}
	}
	tests := []struct {
		name string
		a, b types.CellPos
		want bool
	}{
		{"same row", cell(0, 0), cell(0, 8), true},
		{"same column", cell(0, 4), cell(8, 4), true},
		{"same box", cell(4, 4), cell(3, 3), true},
		{"same cell", cell(2, 2), cell(2, 2), true},
		{"unrelated", cell(4, 4), cell(0, 8), false},
		{"adjacent boxes", cell(2, 2), cell(3, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCellRelated(tt.a, tt.b); got != tt.want {
				t.Errorf("IsCellRelated(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFindAllConflictsEmptyOnCleanGrids(t *testing.T) {
	var empty types.Grid
	if got := FindAllConflicts(&empty); got.Len() != 0 {
		t.Errorf("empty grid has %d conflicts, want 0", got.Len())
	}

	solved := solvedGrid()
	if got := FindAllConflicts(&solved); got.Len() != 0 {
		t.Errorf("solved grid has %d conflicts, want 0", got.Len())
	}
}

func TestFindAllConflictsReportsBothDuplicates(t *testing.T) {
	var g types.Grid
	g.Set(0, 0, 7)
	g.Set(0, 3, 7)

	conflicts := FindAllConflicts(&g)
	want := types.ConflictSet{
		{Row: 0, Col: 0}: {},
		{Row: 0, Col: 3}: {},
	}
	if !conflicts.Equal(want) {
		t.Errorf("conflicts = %v, want %v", conflicts.Positions(), want.Positions())
	}
}

func TestFindAllConflictsAcrossUnits(t *testing.T) {
	// 3 in a column twice, 5 in a box twice; one of the 5s also clashes
	// with a 5 in its row. Every participant appears exactly once.
	var g types.Grid
	g.Set(1, 4, 3)
	g.Set(7, 4, 3)
	g.Set(3, 0, 5)
	g.Set(4, 1, 5)
	g.Set(4, 8, 5)

	conflicts := FindAllConflicts(&g)
	want := types.ConflictSet{
		{Row: 1, Col: 4}: {},
		{Row: 7, Col: 4}: {},
		{Row: 3, Col: 0}: {},
		{Row: 4, Col: 1}: {},
		{Row: 4, Col: 8}: {},
	}
	if !conflicts.Equal(want) {
		t.Errorf("conflicts = %v, want %v", conflicts.Positions(), want.Positions())
	}
}

func TestFindAllConflictsTriple(t *testing.T) {
	var g types.Grid
	g.Set(2, 0, 9)
	g.Set(2, 4, 9)
	g.Set(2, 8, 9)

	conflicts := FindAllConflicts(&g)
	if conflicts.Len() != 3 {
		t.Fatalf("triple duplicate flagged %d cells, want 3", conflicts.Len())
	}
	for _, c := range []int{0, 4, 8} {
		if !conflicts.Has(types.CellPos{Row: 2, Col: c}) {
			t.Errorf("cell (2,%d) missing from conflicts", c)
		}
	}
}

func TestCheckSolution(t *testing.T) {
	solved := solvedGrid()
	if !CheckSolution(&solved) {
		t.Fatal("CheckSolution = false for a valid completed grid")
	}

	t.Run("empty cell disqualifies", func(t *testing.T) {
		g := solvedGrid()
		g.Set(4, 4, types.Empty)
		if CheckSolution(&g) {
			t.Error("CheckSolution = true with an empty cell")
		}
	})

	t.Run("duplicate disqualifies", func(t *testing.T) {
		g := solvedGrid()
		g.Set(0, 0, g.Get(0, 1))
		if CheckSolution(&g) {
			t.Error("CheckSolution = true with a row duplicate")
		}
	})

	t.Run("fully empty grid", func(t *testing.T) {
		var g types.Grid
		if CheckSolution(&g) {
			t.Error("CheckSolution = true for an empty grid")
		}
	})
}
