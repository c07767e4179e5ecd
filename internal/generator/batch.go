package generator

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sudoku_engine_go/internal/types"
)

// ProgressReport describes one step of a batch run. Progress runs from 0
// to 1. The last report of a successful batch has Completed set.
type ProgressReport struct {
	Phase     string
	Progress  float64
	Message   string
	Completed bool
}

// GenerateBatch produces count puzzles at the given difficulty, running up
// to workers generators in parallel. Each task gets its own seeded
// Generator, so workers never share a random source. workers <= 0 means
// one per CPU. When progress is non-nil it receives one report per
// finished puzzle plus a final completed report; the caller must keep
// draining the channel until GenerateBatch returns. Cancelling ctx stops
// the batch with ctx's error.
func GenerateBatch(ctx context.Context, count, workers int, difficulty types.Difficulty, progress chan<- ProgressReport) ([]*types.Puzzle, error) {
	if count <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}

	puzzles := make([]*types.Puzzle, count)
	var done int64

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i := 0; i < count; i++ {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			gen := NewSeeded(time.Now().UnixNano() + int64(i))
			puzzle, err := gen.NewPuzzle(difficulty)
			if err != nil {
				return err
			}
			puzzles[i] = puzzle

			if progress != nil {
				n := atomic.AddInt64(&done, 1)
				report := ProgressReport{
					Phase:    "generation",
					Progress: float64(n) / float64(count),
					Message:  fmt.Sprintf("Generated puzzle %d/%d", n, count),
				}
				select {
				case progress <- report:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress <- ProgressReport{
			Phase:     "generation",
			Progress:  1.0,
			Message:   fmt.Sprintf("Generated %d puzzles", count),
			Completed: true,
		}
	}
	return puzzles, nil
}
