package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sudoku_engine_go/internal/generator"
	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/visualizer"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		difficultyName string
		seed           int64
		outFile        string
		toStore        bool
		showSolution   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one puzzle and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := types.ParseDifficulty(difficultyName)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			start := time.Now()
			puzzle, err := generator.NewSeeded(seed).NewPuzzle(difficulty)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, visualizer.New(&puzzle.Grid).Render())
			fmt.Fprintf(out, "Difficulty: %s (%d clues), seed %d, took %s\n",
				difficulty, difficulty.Clues(), seed, formatDuration(time.Since(start)))
			if showSolution {
				fmt.Fprintln(out, "Solution:")
				fmt.Fprint(out, visualizer.New(&puzzle.Solution).Render())
			}

			if outFile != "" {
				data, err := puzzle.ToJSON()
				if err != nil {
					return err
				}
				if err := os.WriteFile(outFile, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outFile, err)
				}
				fmt.Fprintf(out, "Wrote puzzle to %s\n", outFile)
			}

			if toStore {
				store, err := a.store()
				if err != nil {
					return err
				}
				id, err := store.Save(puzzle)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Stored puzzle as %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficultyName, "difficulty", "d", types.Medium.String(),
		"puzzle difficulty: easy, medium or hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 picks one from the clock")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the puzzle as JSON to this file")
	cmd.Flags().BoolVar(&toStore, "store", false, "upload the puzzle to the configured store")
	cmd.Flags().BoolVar(&showSolution, "solution", false, "also print the solution grid")
	return cmd
}
