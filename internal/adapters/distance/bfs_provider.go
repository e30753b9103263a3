package distance

import (
	"context"
	"errors"
	"fmt"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/platform/obs"
	"grid-dispatch-service/internal/ports"
)

// Neighbour order: up, down, left, right. Fixed for reproducible traversals.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// GridDistanceProvider implements DistanceProvider with breadth-first search
// over an immutable grid. Walls are never entered; every step costs one unit.
//
// All traversal state is allocated per call, so the provider is safe for
// concurrent use and keeps nothing between queries.
type GridDistanceProvider struct {
	grid *domain.Grid
}

func NewGridDistanceProvider(grid *domain.Grid) (*GridDistanceProvider, error) {
	if grid == nil {
		return nil, errors.New("grid distance provider: grid is nil")
	}
	return &GridDistanceProvider{grid: grid}, nil
}

// GetDistance returns the shortest step count from origin to destination.
// Equal locations are 0 apart even on a wall since nothing is traversed.
func (p *GridDistanceProvider) GetDistance(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
) (ports.DistanceResult, error) {
	if err := p.checkBounds(origin, destination); err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get grid distance: %w", err)
	}

	if origin == destination {
		return ports.DistanceResult{Steps: 0, Reachable: true}, nil
	}

	t := p.traverse(origin, &destination)
	return t.result(destination), nil
}

// GetDistancesTo answers many origin->destination queries with one search
// rooted at the destination. Moves between passable cells are symmetric, so
// the reverse distance equals the forward one. A wall origin may still step
// off onto a passable neighbour, which is resolved from the neighbours' distances.
func (p *GridDistanceProvider) GetDistancesTo(
	ctx context.Context,
	origins []domain.Location,
	destination domain.Location,
) (_ map[domain.Location]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "grid.GetDistancesTo")(&err)

	if err := p.checkBounds(append([]domain.Location{destination}, origins...)...); err != nil {
		return nil, fmt.Errorf("get grid distances: %w", err)
	}

	out := make(map[domain.Location]ports.DistanceResult, len(origins))
	if len(origins) == 0 {
		return out, nil
	}

	// Nothing but the destination itself can reach a wall.
	if !p.grid.Passable(destination) {
		for _, o := range origins {
			out[o] = ports.DistanceResult{Reachable: o == destination}
		}
		return out, nil
	}

	t := p.traverse(destination, nil)
	for _, o := range origins {
		switch {
		case o == destination:
			out[o] = ports.DistanceResult{Steps: 0, Reachable: true}
		case p.grid.Passable(o):
			out[o] = t.result(o)
		default:
			out[o] = t.viaNeighbors(p.grid, o)
		}
	}

	return out, nil
}

func (p *GridDistanceProvider) checkBounds(locs ...domain.Location) error {
	for _, l := range locs {
		if !p.grid.InBounds(l) {
			return fmt.Errorf(
				"location %s outside %dx%d grid: %w",
				l, p.grid.Rows(), p.grid.Cols(), domain.ErrOutOfBounds,
			)
		}
	}
	return nil
}

// traversal holds the per-call BFS state.
type traversal struct {
	visited [][]bool
	steps   [][]int
}

func (t *traversal) result(l domain.Location) ports.DistanceResult {
	if !t.visited[l.Row][l.Col] {
		return ports.DistanceResult{}
	}
	return ports.DistanceResult{Steps: t.steps[l.Row][l.Col], Reachable: true}
}

func (t *traversal) viaNeighbors(g *domain.Grid, l domain.Location) ports.DistanceResult {
	best := ports.DistanceResult{}
	for _, d := range neighborOffsets {
		n := domain.Location{Row: l.Row + d[0], Col: l.Col + d[1]}
		if !g.Passable(n) {
			continue
		}
		r := t.result(n)
		if r.Reachable && (!best.Reachable || r.Steps+1 < best.Steps) {
			best = ports.DistanceResult{Steps: r.Steps + 1, Reachable: true}
		}
	}
	return best
}

// traverse runs BFS from start. The start cell is always expanded; every
// other visited cell is passable. When stop is non-nil the search ends as
// soon as stop is reached.
func (p *GridDistanceProvider) traverse(start domain.Location, stop *domain.Location) *traversal {
	rows, cols := p.grid.Rows(), p.grid.Cols()

	t := &traversal{
		visited: make([][]bool, rows),
		steps:   make([][]int, rows),
	}
	for r := 0; r < rows; r++ {
		t.visited[r] = make([]bool, cols)
		t.steps[r] = make([]int, cols)
	}

	queue := make([]domain.Location, 0, rows*cols)
	queue = append(queue, start)
	t.visited[start.Row][start.Col] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]

		for _, d := range neighborOffsets {
			n := domain.Location{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !p.grid.Passable(n) || t.visited[n.Row][n.Col] {
				continue
			}

			t.visited[n.Row][n.Col] = true
			t.steps[n.Row][n.Col] = t.steps[cur.Row][cur.Col] + 1

			if stop != nil && n == *stop {
				return t
			}
			queue = append(queue, n)
		}
	}

	return t
}
