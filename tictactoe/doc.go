// Package tictactoe implements the rules of 3×3 tic-tac-toe and an
// exhaustive minimax solver.
//
// What:
//
//   - Board is a 3×3 array of Marks (Empty, X, O). It is a value type: copying
//     a Board copies every cell, so Result never touches its input.
//   - Player infers whose turn it is from the mark counts (X moves first).
//   - Actions lists the empty cells in row-major order.
//   - Result places the current player's mark, rejecting occupied or
//     off-board cells with ErrInvalidAction.
//   - Winner, Terminal and Utility evaluate a position.
//   - Minimax returns the optimal action for the player to move: X maximizes
//     Utility, O minimizes it.
//
// Search:
//
//	Minimax walks the full game tree: no alpha-beta pruning, no
//	transposition table. That is affordable only because the 3×3 state space
//	is tiny (the tree below the empty board has 549 946 nodes). Among equally
//	good actions the first in Actions order wins, so play is deterministic.
//
// Helpers:
//
//   - ParseBoard / Board.String: compact text form, e.g. "X.O/.X./..O".
//   - SelfPlay: both sides follow Minimax until the game ends; optimal play
//     from the empty board always draws.
//
// Errors:
//
//   - ErrInvalidAction: Result called with an unavailable action.
//   - ErrBadBoard:      ParseBoard input is not exactly nine ".XO" glyphs.
package tictactoe
