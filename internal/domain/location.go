package domain

import "fmt"

// Immutable grid coordinate (row, column). Comparable, so it can key maps.
type Location struct {
	Row int
	Col int
}

// NewLocation validates that both coordinates are non-negative.
func NewLocation(row, col int) (Location, error) {
	if row < 0 || col < 0 {
		return Location{}, fmt.Errorf("new location (%d,%d): %w", row, col, ErrInvalidLocation)
	}
	return Location{Row: row, Col: col}, nil
}

func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.Row, l.Col) }
