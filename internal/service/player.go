package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/caro-backend/internal/entity"
	"github.com/rocketscienceinc/caro-backend/internal/repository"
)

type PlayerService interface {
	ActiveMatch(ctx context.Context, playerID string) (string, error)
	JoinMatch(ctx context.Context, playerID, matchKey string, ttl time.Duration) error
	LeaveMatch(ctx context.Context, playerID string) error
}

type playerService struct {
	playerRepo playerRepo
}

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player, ttl time.Duration) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	DeleteByID(ctx context.Context, id string) error
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

// ActiveMatch - returns the key of the match the player is bound to, or "" if none.
func (that *playerService) ActiveMatch(ctx context.Context, playerID string) (string, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("get player by id: %w", err)
	}

	if !player.InMatch() {
		return "", nil
	}

	return player.MatchKey, nil
}

func (that *playerService) JoinMatch(ctx context.Context, playerID, matchKey string, ttl time.Duration) error {
	player := &entity.Player{
		ID:       playerID,
		MatchKey: matchKey,
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player, ttl); err != nil {
		return fmt.Errorf("bind player to match: %w", err)
	}

	return nil
}

func (that *playerService) LeaveMatch(ctx context.Context, playerID string) error {
	err := that.playerRepo.DeleteByID(ctx, playerID)
	if err != nil && !errors.Is(err, repository.ErrPlayerNotFound) {
		return fmt.Errorf("release player: %w", err)
	}

	return nil
}
