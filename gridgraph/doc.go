// Package gridgraph models a bounded, 4-connected 2D grid with obstacles:
// the shared problem instance that every strategy in package pathfind
// searches over.
//
// What:
//
//   - Cell is an immutable (Row, Col) value, usable as a map key.
//   - Move is one of four unit directions: Up, Down, Left, Right.
//     Directions fixes their order, and every search honors that order.
//   - Path is an ordered sequence of Moves from a start cell to a goal cell.
//   - ObstacleSet is a set of impassable Cells.
//   - Grid bundles Rows, Cols and an ObstacleSet, answering InBounds,
//     Passable and Neighbors queries.
//
// Why:
//
//   - Snake bots, roguelike agents and puzzle solvers all reduce their state
//     to "where am I, where do I want to be, what blocks me".
//   - Keeping the model in one package lets all search strategies share one
//     definition of a valid move.
//
// Helpers:
//
//   - Manhattan:  |Δrow| + |Δcol|, admissible on a 4-connected unit grid.
//   - Walk:       replay a Path from a start cell, rejecting off-grid or
//     blocked steps (ErrOutOfBounds, ErrBlocked).
//   - Components: 4-connected regions of passable cells; Connected(a, b).
//   - From2D / ParseASCII: build grids from integer matrices or ASCII mazes.
//
// Complexity (R = Rows, C = Cols):
//
//   - InBounds, Passable, Manhattan: O(1).
//   - Neighbors: O(1) (at most four candidates).
//   - Walk: O(len(path)).
//   - Components, Connected: O(R×C) time and memory.
//
// Errors:
//
//   - ErrBadDimensions:   rows or cols not positive.
//   - ErrEmptyGrid:       input matrix has no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrUnknownGlyph:    ASCII maze contains an unsupported character.
//   - ErrMissingMarker:   ASCII maze lacks an S or a G.
//   - ErrDuplicateMarker: ASCII maze has more than one S or G.
//   - ErrOutOfBounds, ErrBlocked: a walked path leaves the grid or hits an obstacle.
package gridgraph
