// Package generator produces completed grids by randomized backtracking
// and carves playable puzzles out of them. A Generator owns its random
// source, so runs are reproducible from a seed.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"sudoku_engine_go/internal/types"
	"sudoku_engine_go/internal/validator"
)

// maxAttempts bounds the retry loop in NewPuzzle. Filling an empty grid
// cannot fail, so the bound exists only to turn a broken random source
// into an error instead of a spin.
const maxAttempts = 3

// Generator creates solutions and puzzles. It is not safe for concurrent
// use; batch generation hands every worker its own Generator.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// New returns a Generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded returns a Generator with its own source seeded by seed.
// Equal seeds produce equal puzzles.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the Generator was created with, or 0 when it was
// built from a caller-supplied source.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Fill completes grid in place by recursive backtracking. Empty cells are
// visited in row-major order and candidates 1..9 are tried in a freshly
// shuffled order at every cell, which is what makes two runs produce
// different solutions. It reports whether a complete valid assignment was
// reached; on failure every tried cell has been reverted, so the grid is
// left exactly as passed in. Failure is a normal outcome for grids that
// already contain a contradiction, not an error.
func (g *Generator) Fill(grid *types.Grid) bool {
	row, col, ok := findEmpty(grid)
	if !ok {
		return true
	}

	for _, n := range g.rng.Perm(types.Size) {
		value := n + 1
		if !validator.IsValidPlacement(grid, row, col, value) {
			continue
		}
		grid[row][col] = value
		if g.Fill(grid) {
			return true
		}
		grid[row][col] = types.Empty
	}
	return false
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(grid *types.Grid) (row, col int, ok bool) {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if grid[r][c] == types.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Carve returns a playable grid with exactly difficulty.Removals() cells
// cleared from solved. The input is never written to; carving happens on
// a copy. Cells are picked uniformly at random and already-empty picks
// are simply redrawn, so clearing never counts twice.
func (g *Generator) Carve(solved *types.Grid, difficulty types.Difficulty) types.Grid {
	puzzle := solved.Clone()

	remaining := difficulty.Removals()
	for remaining > 0 {
		row := g.rng.Intn(types.Size)
		col := g.rng.Intn(types.Size)
		if puzzle[row][col] == types.Empty {
			continue
		}
		puzzle[row][col] = types.Empty
		remaining--
	}
	return puzzle
}

// NewPuzzle generates a fresh solution, carves it at the requested
// difficulty and assembles the result. Grid and Initial start out
// identical; Solution keeps the completed grid the puzzle was carved
// from. The carved grid is not guaranteed to have a unique solution.
func (g *Generator) NewPuzzle(difficulty types.Difficulty) (*types.Puzzle, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var solution types.Grid
		if !g.Fill(&solution) {
			continue
		}

		carved := g.Carve(&solution, difficulty)
		return &types.Puzzle{
			Seed:       g.seed,
			Difficulty: difficulty,
			Grid:       carved,
			Solution:   solution,
			Initial:    carved,
			CreatedAt:  time.Now().Unix(),
		}, nil
	}
	return nil, fmt.Errorf("failed to generate valid puzzle after %d attempts", maxAttempts)
}
