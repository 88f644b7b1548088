package gridgraph

import "fmt"

// Maze glyphs understood by ParseASCII.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// From2D builds a Grid from a non-empty, rectangular matrix.
// values[r][c] != 0 marks an obstacle at (r,c); zero is free floor.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C).
func From2D(values [][]int) (Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	obstacles := make(ObstacleSet)
	for r, row := range values {
		if len(row) != cols {
			return Grid{}, ErrNonRectangular
		}
		for c, v := range row {
			if v != 0 {
				obstacles[Cell{Row: r, Col: c}] = struct{}{}
			}
		}
	}

	return Grid{Rows: rows, Cols: cols, Obstacles: obstacles}, nil
}

// ParseASCII builds a Maze from lines of glyphs:
//
//	'#' obstacle, '.' floor, 'S' start (floor), 'G' goal (floor).
//
// Exactly one S and one G are required.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph,
// ErrMissingMarker or ErrDuplicateMarker.
func ParseASCII(lines []string) (Maze, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return Maze{}, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	m := Maze{Grid: Grid{Rows: rows, Cols: cols, Obstacles: make(ObstacleSet)}}
	var haveStart, haveGoal bool

	for r, line := range lines {
		if len(line) != cols {
			return Maze{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			cell := Cell{Row: r, Col: c}
			switch line[c] {
			case GlyphWall:
				m.Obstacles[cell] = struct{}{}
			case GlyphFloor:
			case GlyphStart:
				if haveStart {
					return Maze{}, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, GlyphStart, cell)
				}
				haveStart, m.Start = true, cell
			case GlyphGoal:
				if haveGoal {
					return Maze{}, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, GlyphGoal, cell)
				}
				haveGoal, m.Goal = true, cell
			default:
				return Maze{}, fmt.Errorf("%w: %q at %s", ErrUnknownGlyph, line[c], cell)
			}
		}
	}
	if !haveStart || !haveGoal {
		return Maze{}, ErrMissingMarker
	}

	return m, nil
}
