package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sudoku_engine_go/internal/hint"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/visualizer"
)

func newHintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hint FILE",
		Short: "Ask the hint service for the next step on a puzzle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			puzzle, err := types.PuzzleFromJSON(data)
			if err != nil {
				return fmt.Errorf("failed to parse puzzle file %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			provider := a.hintProvider()
			if provider == nil {
				a.log.Debug("hint service not configured")
				fmt.Fprintln(out, "No hint available this time.")
				return nil
			}

			suggestion, err := provider.Suggest(cmd.Context(), hint.Request{
				Initial: puzzle.Initial,
				Current: puzzle.Grid,
			})
			if err != nil {
				a.log.WithError(err).Debug("hint lookup failed")
				fmt.Fprintln(out, "No hint available this time.")
				return nil
			}

			fmt.Fprintf(out, "Strategy: %s\n", suggestion.Strategy)
			fmt.Fprintln(out, suggestion.Explanation)
			if len(suggestion.Cells) > 0 {
				marks := types.NewConflictSet()
				for _, cell := range suggestion.Cells {
					marks.Add(cell)
				}
				fmt.Fprint(out, visualizer.New(&puzzle.Grid).Highlight(marks).Render())
			}
			return nil
		},
	}
}
