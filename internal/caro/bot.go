package caro

import (
	"math"

	"golang.org/x/exp/rand"
)

const (
	winReward = 10
	plyOffset = 3
)

// Bot picks moves for O with depth-limited alpha-beta minimax.
// A Bot belongs to one match and is not safe for concurrent use.
type Bot struct {
	depth          int
	mistakeEnabled bool
	mistakeChance  int

	rnd   *rand.Rand
	nodes uint64
}

// NewBot - creates a bot for the given settings. src drives the mistake policy.
func NewBot(settings Settings, src rand.Source) *Bot {
	return &Bot{
		depth:          settings.MinimaxDepth,
		mistakeEnabled: settings.MistakeEnabled,
		mistakeChance:  settings.MistakeChance,
		rnd:            rand.New(src),
	}
}

// Move - returns the cell O should play, or false when the board has no empty cell.
// The game is left exactly as it was.
func (that *Bot) Move(game *Game) (Cell, bool) {
	that.nodes = 0

	candidates := game.EmptyCells()
	if len(candidates) == 0 {
		return Cell{}, false
	}

	if that.makesMistake() {
		return candidates[that.rnd.Intn(len(candidates))], true
	}

	best := candidates[0]
	bestScore := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt

	// beta stays open at the root; only alpha follows the best score.
	for _, cell := range candidates {
		score := that.try(game, O, cell, func() int {
			return that.Minimax(game, Minimizer, that.depth-1, alpha, beta)
		})

		if score > bestScore {
			bestScore = score
			best = cell
		}

		alpha = max(alpha, bestScore)
	}

	return best, true
}

// Minimax - scores the position with toMove to play and depth plies left.
func (that *Bot) Minimax(game *Game, toMove Side, depth, alpha, beta int) int {
	that.nodes++

	if game.CheckWin(O) {
		return that.winScore(depth)
	}

	if game.CheckWin(X) {
		return -that.winScore(depth)
	}

	if depth <= 0 {
		return Evaluate(game)
	}

	mark := toMove.Mark()
	size := len(game.board)
	searched := false

	var best int
	if toMove == Maximizer {
		best = math.MinInt
	} else {
		best = math.MaxInt
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if game.board[row][col] != Empty {
				continue
			}

			searched = true
			score := that.try(game, mark, Cell{Row: row, Col: col}, func() int {
				return that.Minimax(game, toMove.Other(), depth-1, alpha, beta)
			})

			if toMove == Maximizer {
				best = max(best, score)
				alpha = max(alpha, best)
			} else {
				best = min(best, score)
				beta = min(beta, best)
			}

			if beta <= alpha {
				return best
			}
		}
	}

	// every cell taken: nothing to search, fall back to the static score
	if !searched {
		return Evaluate(game)
	}

	return best
}

// Nodes - number of Minimax calls made by the last Move.
func (that *Bot) Nodes() uint64 {
	return that.nodes
}

// try - plays mark at cell, runs next and restores the game on every exit path.
func (that *Bot) try(game *Game, mark Mark, cell Cell, next func() int) int {
	undo := game.simulate(mark, cell)
	defer undo()

	return next()
}

// winScore - reward for a won position reached with depth plies left; quicker wins score
// higher. Never below 1 so a win is always positive.
func (that *Bot) winScore(depth int) int {
	return max(1, winReward-(that.depth+plyOffset-depth))
}

func (that *Bot) makesMistake() bool {
	if !that.mistakeEnabled {
		return false
	}

	roll := that.rnd.Intn(100) + 1

	return roll <= that.mistakeChance
}
