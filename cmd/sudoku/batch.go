package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"sudoku_engine_go/internal/generator"
	"sudoku_engine_go/internal/types"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		difficultyName string
		count          int
		workers        int
		outDir         string
		toStore        bool
		withProfile    bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many puzzles in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := types.ParseDifficulty(difficultyName)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			if withProfile {
				defer profile.Start().Stop()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "━━━ Generating %d %s puzzles ━━━\n", count, difficulty)

			start := time.Now()
			progress := make(chan generator.ProgressReport)
			drained := make(chan struct{})
			go func() {
				defer close(drained)
				for report := range progress {
					fmt.Fprintf(out, "\rGenerating puzzles... %s - %s [%s elapsed]",
						progressBar(report.Progress, 20), report.Message,
						formatDuration(time.Since(start)))
					if report.Completed {
						fmt.Fprintln(out)
					}
				}
			}()

			puzzles, err := generator.GenerateBatch(cmd.Context(), count, workers, difficulty, progress)
			close(progress)
			<-drained
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Generated %d %s puzzles in %s\n",
				len(puzzles), difficulty, formatDuration(time.Since(start)))

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return fmt.Errorf("failed to create %s: %w", outDir, err)
				}
				for i, puzzle := range puzzles {
					data, err := puzzle.ToJSON()
					if err != nil {
						return err
					}
					name := filepath.Join(outDir, fmt.Sprintf("sudoku_%s_%03d.json", difficulty, i+1))
					if err := os.WriteFile(name, data, 0644); err != nil {
						return fmt.Errorf("failed to write %s: %w", name, err)
					}
				}
				fmt.Fprintf(out, "Wrote %d puzzle files to %s\n", len(puzzles), outDir)
			}

			if toStore {
				store, err := a.store()
				if err != nil {
					return err
				}
				for _, puzzle := range puzzles {
					if _, err := store.Save(puzzle); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "Stored %d puzzles\n", len(puzzles))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficultyName, "difficulty", "d", types.Medium.String(),
		"puzzle difficulty: easy, medium or hard")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of puzzles to generate")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers; 0 means one per CPU")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write each puzzle as JSON into this directory")
	cmd.Flags().BoolVar(&toStore, "store", false, "upload the puzzles to the configured store")
	cmd.Flags().BoolVar(&withProfile, "profile", false, "write a CPU profile for the run")
	return cmd
}
