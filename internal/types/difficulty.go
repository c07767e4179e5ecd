package types

import "fmt"

// Difficulty selects how many cells are carved out of a solved grid.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Removals returns the number of cells cleared when carving a puzzle at
// this difficulty. Unknown values fall back to Medium.
func (d Difficulty) Removals() int {
	switch d {
	case Easy:
		return 35
	case Hard:
		return 55
	default:
		return 45
	}
}

// Clues returns the number of cells left filled after carving.
func (d Difficulty) Clues() int {
	return Size*Size - d.Removals()
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// DifficultyNames lists the accepted difficulty labels in ascending order.
func DifficultyNames() []string {
	return []string{Easy.String(), Medium.String(), Hard.String()}
}

// ParseDifficulty maps a label to its Difficulty. Matching is exact and
// lowercase.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}
