package service

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
	"github.com/rocketscienceinc/caro-backend/internal/caro"
)

type BotService interface {
	MakeTurn(game *caro.Game) (caro.Cell, error)
}

type botService struct {
	bot *caro.Bot
}

// NewBotService - creates the computer opponent of one match.
func NewBotService(settings caro.Settings, src rand.Source) BotService {
	return &botService{
		bot: caro.NewBot(settings, src),
	}
}

// MakeTurn - searches a move for O and plays it.
func (that *botService) MakeTurn(game *caro.Game) (caro.Cell, error) {
	if game.IsFinished() {
		return caro.Cell{}, apperror.ErrGameFinished
	}

	if game.Turn() != caro.O {
		return caro.Cell{}, apperror.ErrNotYourTurn
	}

	cell, ok := that.bot.Move(game)
	if !ok {
		return caro.Cell{}, apperror.ErrNoAvailableMoves
	}

	if err := game.MakeTurn(cell.Row, cell.Col); err != nil {
		return caro.Cell{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}
