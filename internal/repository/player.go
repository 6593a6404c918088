package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/caro-backend/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository keeps the index of players currently bound to a match.
type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player, ttl time.Duration) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

// CreateOrUpdate - stores the player; a zero ttl keeps the key until it is deleted.
func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player, ttl time.Duration) error {
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	err = that.client.Set(ctx, playerKey(player.ID), playerJSON, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	response, err := that.client.Get(ctx, playerKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	var existingPlayer entity.Player
	if err = json.Unmarshal([]byte(response), &existingPlayer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &existingPlayer, nil
}

func (that *dbPlayer) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, playerKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete player by ID: %w", err)
	}

	if deleted == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

func playerKey(id string) string {
	return "player:" + id
}
