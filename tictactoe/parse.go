package tictactoe

import (
	"fmt"
	"strings"
)

// ParseBoard reads nine glyphs ('.', 'X', 'O') in row-major order.
// Whitespace and '/' are ignored, so "X.O/.X./..O" and "X.O .X. ..O" are
// equivalent. Returns ErrBadBoard for any other glyph or count.
func ParseBoard(s string) (Board, error) {
	var b Board
	n := 0
	for _, ch := range s {
		var m Mark
		switch ch {
		case ' ', '\t', '\n', '\r', '/':
			continue
		case '.':
			m = Empty
		case 'X':
			m = X
		case 'O':
			m = O
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", ErrBadBoard, ch)
		}
		if n == Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrBadBoard, Size*Size)
		}
		b[n/Size][n%Size] = m
		n++
	}
	if n != Size*Size {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrBadBoard, n, Size*Size)
	}
	return b, nil
}

// String renders b as three lines of glyphs, e.g. "X.O\n.X.\n..O".
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, m := range row {
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}
