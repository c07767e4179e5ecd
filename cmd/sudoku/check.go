package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
	"sudoku_engine_go/internal/visualizer"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Scan a grid for conflicts and report whether it is solved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGridFile(args[0])
			if err != nil {
				return err
			}

			conflicts := validator.FindAllConflicts(grid)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, visualizer.New(grid).Highlight(conflicts).Render())
			for _, p := range conflicts.Positions() {
				fmt.Fprintf(out, "conflict at row %d, col %d\n", p.Row, p.Col)
			}

			switch {
			case validator.CheckSolution(grid):
				fmt.Fprintln(out, "Grid is solved.")
			case conflicts.Len() > 0:
				fmt.Fprintf(out, "Grid is not solved: %d cells in conflict.\n", conflicts.Len())
			default:
				fmt.Fprintf(out, "Grid is not solved: %d cells still empty.\n",
					types.Size*types.Size-grid.CountFilled())
			}
			return nil
		},
	}
}

// readGridFile loads either a bare grid (a 9x9 JSON array) or a puzzle
// file as written by generate, in which case the player grid is checked.
func readGridFile(path string) (*types.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		puzzle, err := types.PuzzleFromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse puzzle file %s: %w", path, err)
		}
		return &puzzle.Grid, nil
	}

	grid, err := types.GridFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid file %s: %w", path, err)
	}
	return grid, nil
}
