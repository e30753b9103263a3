package domain

import (
	"fmt"
	"strings"
)

// Grid is the immutable operating area built from a symbol layout.
// Cells are owned by the Grid and never exposed for mutation, so a
// single Grid can be shared across goroutines without locking.
type Grid struct {
	rows     int
	cols     int
	cells    [][]Cell
	registry AgentRegistry
}

// NewGrid parses a rectangular layout, one symbol per cell, and discovers
// the agents present on it. Rows are read as runes.
func NewGrid(layout []string) (*Grid, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("new grid: layout has no rows: %w", ErrMalformedLayout)
	}

	first := []rune(layout[0])
	if len(first) == 0 {
		return nil, fmt.Errorf("new grid: layout has no columns: %w", ErrMalformedLayout)
	}

	rows, cols := len(layout), len(first)
	cells := make([][]Cell, rows)

	for r, line := range layout {
		symbols := []rune(line)
		if len(symbols) != cols {
			return nil, fmt.Errorf(
				"new grid: row %d has %d cells, want %d: %w",
				r, len(symbols), cols, ErrMalformedLayout,
			)
		}

		cells[r] = make([]Cell, cols)
		for c, s := range symbols {
			t, err := ParseCellType(s)
			if err != nil {
				return nil, fmt.Errorf("new grid: cell (%d,%d): %w", r, c, err)
			}
			cells[r][c] = Cell{Location: Location{Row: r, Col: c}, Type: t}
		}
	}

	g := &Grid{rows: rows, cols: cols, cells: cells}
	g.registry = newAgentRegistry(cells)

	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether loc lies inside the grid.
func (g *Grid) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// CellAt returns the cell at loc or ErrOutOfBounds.
func (g *Grid) CellAt(loc Location) (Cell, error) {
	if !g.InBounds(loc) {
		return Cell{}, fmt.Errorf(
			"cell at %s: grid is %dx%d: %w",
			loc, g.rows, g.cols, ErrOutOfBounds,
		)
	}
	return g.cells[loc.Row][loc.Col], nil
}

// Passable is true for in-bounds cells that are not walls.
func (g *Grid) Passable(loc Location) bool {
	if !g.InBounds(loc) {
		return false
	}
	return g.cells[loc.Row][loc.Col].Type != CellWall
}

// Registry returns the agents discovered at construction.
func (g *Grid) Registry() AgentRegistry { return g.registry }

// Layout renders the grid back into symbol rows.
func (g *Grid) Layout() []string {
	out := make([]string, 0, g.rows)
	for _, row := range g.cells {
		var b strings.Builder
		for _, cell := range row {
			b.WriteRune(cell.Type.Symbol())
		}
		out = append(out, b.String())
	}
	return out
}
