package gridgraph

import "errors"

var (
	// ErrBadDimensions indicates rows or cols is not positive.
	ErrBadDimensions = errors.New("gridgraph: rows and cols must be positive")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownGlyph indicates an ASCII maze character outside "#.SG".
	ErrUnknownGlyph = errors.New("gridgraph: unknown maze glyph")
	// ErrMissingMarker indicates an ASCII maze without a start or goal marker.
	ErrMissingMarker = errors.New("gridgraph: maze must contain one S and one G")
	// ErrDuplicateMarker indicates an ASCII maze with a repeated start or goal marker.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate maze marker")
	// ErrOutOfBounds indicates a walked path stepped outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: step leaves the grid")
	// ErrBlocked indicates a walked path stepped onto an obstacle.
	ErrBlocked = errors.New("gridgraph: step enters an obstacle")
)
