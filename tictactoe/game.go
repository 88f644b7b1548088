package tictactoe

import "fmt"

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// Player returns the mark to move next: X unless X already has more marks than O.
func Player(b Board) Mark {
	var nx, no int
	for _, row := range b {
		for _, m := range row {
			switch m {
			case X:
				nx++
			case O:
				no++
			}
		}
	}
	if nx > no {
		return O
	}
	return X
}

// Actions returns every empty cell in row-major order.
func Actions(b Board) []Action {
	acts := make([]Action, 0, Size*Size)
	for r, row := range b {
		for c, m := range row {
			if m == Empty {
				acts = append(acts, Action{Row: r, Col: c})
			}
		}
	}
	return acts
}

// Result returns the board after the current player marks a.
// b itself is not modified.
// Returns ErrInvalidAction if a is off the board or already occupied.
func Result(b Board, a Action) (Board, error) {
	if a.Row < 0 || a.Row >= Size || a.Col < 0 || a.Col >= Size {
		return b, fmt.Errorf("%w: %s is off the board", ErrInvalidAction, a)
	}
	if b[a.Row][a.Col] != Empty {
		return b, fmt.Errorf("%w: %s is taken by %s", ErrInvalidAction, a, b[a.Row][a.Col])
	}

	next := b
	next[a.Row][a.Col] = Player(b)
	return next, nil
}

// Winner returns the mark holding three in a row, column or diagonal,
// or Empty if there is none.
func Winner(b Board) Mark {
	for i := 0; i < Size; i++ {
		if b[i][0] != Empty && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != Empty && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}
	if b[1][1] != Empty {
		if b[0][0] == b[1][1] && b[1][1] == b[2][2] {
			return b[1][1]
		}
		if b[0][2] == b[1][1] && b[1][1] == b[2][0] {
			return b[1][1]
		}
	}
	return Empty
}

// Terminal reports whether the game is over: somebody won or the board is full.
func Terminal(b Board) bool {
	if Winner(b) != Empty {
		return true
	}
	for _, row := range b {
		for _, m := range row {
			if m == Empty {
				return false
			}
		}
	}
	return true
}

// Utility scores a finished board: +1 if X won, -1 if O won, 0 otherwise.
func Utility(b Board) int {
	switch Winner(b) {
	case X:
		return 1
	case O:
		return -1
	}
	return 0
}
