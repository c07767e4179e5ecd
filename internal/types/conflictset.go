package types

import "sort"

// ConflictSet is a set of cells that take part in at least one
// duplicate-value violation. It is rebuilt from a grid snapshot on every
// scan rather than maintained incrementally.
type ConflictSet map[CellPos]struct{}

// NewConflictSet returns an empty set.
func NewConflictSet() ConflictSet {
	return make(ConflictSet)
}

// Add inserts p into the set. Adding the same position twice is a no-op.
func (s ConflictSet) Add(p CellPos) {
	s[p] = struct{}{}
}

// Has reports whether p is in the set.
func (s ConflictSet) Has(p CellPos) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of distinct positions in the set.
func (s ConflictSet) Len() int {
	return len(s)
}

// Positions returns the set's contents in row-major order.
func (s ConflictSet) Positions() []CellPos {
	out := make([]CellPos, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Equal reports whether both sets contain exactly the same positions.
func (s ConflictSet) Equal(other ConflictSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
