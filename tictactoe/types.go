package tictactoe

import (
	"errors"
	"fmt"
)

// Sentinel errors for tictactoe operations.
var (
	// ErrInvalidAction indicates an action outside the board or on an occupied cell.
	ErrInvalidAction = errors.New("tictactoe: invalid action")

	// ErrBadBoard indicates text that does not describe a 3×3 board.
	ErrBadBoard = errors.New("tictactoe: malformed board")
)

// Size is the side length of the board.
const Size = 3

// Mark is the content of one board cell.
type Mark uint8

const (
	// Empty marks an unoccupied cell.
	Empty Mark = iota
	// X moves first and maximizes Utility.
	X
	// O moves second and minimizes Utility.
	O
)

// String returns ".", "X" or "O".
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

// Board is a 3×3 grid of marks, indexed [row][col].
type Board [Size][Size]Mark

// Action selects the cell at (Row, Col).
type Action struct {
	Row, Col int
}

// String formats a as "(row,col)".
func (a Action) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}
