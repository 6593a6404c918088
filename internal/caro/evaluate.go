package caro

// Evaluate - static score of the position from O's point of view. Every line held only
// by O adds the number of O marks on it, every line held only by X subtracts the number
// of X marks; mixed and empty lines count zero.
func Evaluate(game *Game) int {
	score := 0

	for _, line := range game.lines {
		var ours, theirs int
		for _, cell := range line {
			switch game.board[cell.Row][cell.Col] {
			case O:
				ours++
			case X:
				theirs++
			}
		}

		switch {
		case ours > 0 && theirs == 0:
			score += ours
		case theirs > 0 && ours == 0:
			score -= theirs
		}
	}

	return score
}
