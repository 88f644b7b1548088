package tictactoe

// Minimax returns the optimal action for the player to move and true, or
// false if b is terminal. X picks the action with the highest Value, O the
// lowest; ties go to the earliest action in Actions order.
func Minimax(b Board) (Action, bool) {
	if Terminal(b) {
		return Action{}, false
	}

	maximize := Player(b) == X
	var best Action
	bestValue := 0
	for i, a := range Actions(b) {
		next, _ := Result(b, a)
		v := Value(next)
		if i == 0 || (maximize && v > bestValue) || (!maximize && v < bestValue) {
			best, bestValue = a, v
		}
	}
	return best, true
}

// Value returns the minimax value of b under optimal play by both sides:
// Utility(b) on terminal boards, otherwise the max (X to move) or min
// (O to move) over every child position.
func Value(b Board) int {
	if Terminal(b) {
		return Utility(b)
	}

	maximize := Player(b) == X
	value := 0
	for i, a := range Actions(b) {
		next, _ := Result(b, a)
		v := Value(next)
		if i == 0 || (maximize && v > value) || (!maximize && v < value) {
			value = v
		}
	}
	return value
}

// SelfPlay lets both players follow Minimax from b until the game ends and
// returns the final board with the actions played, in order.
func SelfPlay(b Board) (Board, []Action) {
	var played []Action
	for {
		a, ok := Minimax(b)
		if !ok {
			return b, played
		}
		b, _ = Result(b, a)
		played = append(played, a)
	}
}
