// Package gridgraph defines the core value types of a grid search problem:
// cells, moves, paths, obstacle sets and grid bounds.
package gridgraph

import (
	"fmt"
	"strings"
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row, Col int
}

// Add returns the cell reached by applying m to c.
func (c Cell) Add(m Move) Cell {
	return Cell{Row: c.Row + m.DRow, Col: c.Col + m.DCol}
}

// String formats c as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is a unit step along a single axis.
type Move struct {
	DRow, DCol int
}

var (
	// Up moves one row towards row 0.
	Up = Move{DRow: -1}
	// Down moves one row away from row 0.
	Down = Move{DRow: +1}
	// Left moves one column towards column 0.
	Left = Move{DCol: -1}
	// Right moves one column away from column 0.
	Right = Move{DCol: +1}
)

// Directions lists the four moves in the order every search explores them.
var Directions = [4]Move{Up, Down, Left, Right}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	return Move{DRow: -m.DRow, DCol: -m.DCol}
}

// String names the move ("up", "down", "left", "right").
func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("move(%d,%d)", m.DRow, m.DCol)
}

// Path is an ordered sequence of moves from a start cell to a goal cell.
// An empty Path means either "no path" or "already at the goal".
type Path []Move

// Len returns the number of moves in p.
func (p Path) Len() int { return len(p) }

// String joins the move names with spaces, e.g. "down down right".
func (p Path) String() string {
	names := make([]string, len(p))
	for i, m := range p {
		names[i] = m.String()
	}
	return strings.Join(names, " ")
}

// ObstacleSet is a set of impassable cells.
type ObstacleSet map[Cell]struct{}

// NewObstacleSet builds an ObstacleSet from the given cells.
func NewObstacleSet(cells ...Cell) ObstacleSet {
	s := make(ObstacleSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is an obstacle. A nil set has no obstacles.
func (s ObstacleSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Step pairs a neighbor cell with the move that reaches it.
type Step struct {
	To   Cell
	Move Move
}

// Grid is a Rows×Cols rectangle of cells, some of which are obstacles.
// Valid coordinates are [0,Rows) × [0,Cols). A Grid never mutates its
// ObstacleSet.
type Grid struct {
	Rows, Cols int
	Obstacles  ObstacleSet
}

// Maze is a Grid together with the start and goal markers parsed from an
// ASCII drawing.
type Maze struct {
	Grid
	Start, Goal Cell
}
