// Package gridgraph provides bounds, passability and neighbor queries over a
// rectangular grid, plus the Manhattan distance heuristic and path replay.
package gridgraph

import "fmt"

// NewGrid validates the dimensions and returns a Grid over obstacles.
// The obstacle set is referenced, not copied; callers must not mutate it
// while a search is running.
// Returns ErrBadDimensions if rows or cols is not positive.
func NewGrid(rows, cols int, obstacles ObstacleSet) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}

	return Grid{Rows: rows, Cols: cols, Obstacles: obstacles}, nil
}

// InBounds reports whether c lies within [0,Rows) × [0,Cols).
// Complexity: O(1).
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Passable reports whether c is in bounds and not an obstacle.
// Complexity: O(1).
func (g Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.Obstacles.Has(c)
}

// Neighbors returns the passable cells adjacent to c, in Directions order.
// Complexity: O(1).
func (g Grid) Neighbors(c Cell) []Step {
	steps := make([]Step, 0, len(Directions))
	for _, m := range Directions {
		next := c.Add(m)
		if g.Passable(next) {
			steps = append(steps, Step{To: next, Move: m})
		}
	}

	return steps
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Walk applies p to start and returns the final cell.
// Every intermediate cell must be passable; otherwise Walk stops and returns
// ErrOutOfBounds or ErrBlocked wrapped with the offending step index.
// Complexity: O(len(p)).
func (g Grid) Walk(start Cell, p Path) (Cell, error) {
	cur := start
	for i, m := range p {
		cur = cur.Add(m)
		if !g.InBounds(cur) {
			return cur, fmt.Errorf("%w: step %d (%s) reaches %s", ErrOutOfBounds, i, m, cur)
		}
		if g.Obstacles.Has(cur) {
			return cur, fmt.Errorf("%w: step %d (%s) reaches %s", ErrBlocked, i, m, cur)
		}
	}

	return cur, nil
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g Grid) Index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}
