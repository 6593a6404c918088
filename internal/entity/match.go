package entity

import (
	"github.com/rocketscienceinc/caro-backend/internal/caro"
)

// Match is the read-only view of a game handed to transports.
type Match struct {
	Key            string      `json:"key"`
	Board          [][]string  `json:"board"`
	Turn           string      `json:"player_turn,omitempty"`
	Status         string      `json:"status"`
	Winner         string      `json:"winner,omitempty"`
	PlayerX        string      `json:"player_x"`
	PlayerO        string      `json:"player_o"`
	PvP            bool        `json:"pvp"`
	HistoryX       []caro.Cell `json:"history_x"`
	HistoryO       []caro.Cell `json:"history_o"`
	PendingRemoval *caro.Cell  `json:"pending_removal,omitempty"`
	Moves          int         `json:"moves"`
}

func NewMatch(key string, game *caro.Game) *Match {
	board := game.Board()
	cells := make([][]string, len(board))
	for row := range board {
		cells[row] = make([]string, len(board[row]))
		for col, mark := range board[row] {
			cells[row][col] = mark.String()
		}
	}

	match := &Match{
		Key:      key,
		Board:    cells,
		Status:   game.Status(),
		PlayerX:  game.Player(caro.X),
		PlayerO:  game.Player(caro.O),
		PvP:      game.IsPvP(),
		HistoryX: game.History(caro.X),
		HistoryO: game.History(caro.O),
		Moves:    game.Moves(),
	}

	if !game.IsFinished() {
		match.Turn = game.Turn().String()
	}

	if winner, ok := game.Winner(); ok {
		match.Winner = winner.String()
	}

	if cell, ok := game.PendingRemoval(); ok {
		match.PendingRemoval = &cell
	}

	return match
}

func (that *Match) IsFinished() bool {
	return that.Status == caro.StatusFinished
}
