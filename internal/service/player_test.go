package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/caro-backend/internal/entity"
	"github.com/rocketscienceinc/caro-backend/internal/repository"
)

var errRedisDown = errors.New("redis down")

type memoryPlayerRepo struct {
	players map[string]entity.Player
	ttls    map[string]time.Duration
	err     error
}

func newMemoryPlayerRepo() *memoryPlayerRepo {
	return &memoryPlayerRepo{
		players: make(map[string]entity.Player),
		ttls:    make(map[string]time.Duration),
	}
}

func (that *memoryPlayerRepo) CreateOrUpdate(_ context.Context, player *entity.Player, ttl time.Duration) error {
	if that.err != nil {
		return that.err
	}
	that.players[player.ID] = *player
	that.ttls[player.ID] = ttl
	return nil
}

func (that *memoryPlayerRepo) GetByID(_ context.Context, id string) (*entity.Player, error) {
	if that.err != nil {
		return nil, that.err
	}
	player, ok := that.players[id]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}
	return &player, nil
}

func (that *memoryPlayerRepo) DeleteByID(_ context.Context, id string) error {
	if that.err != nil {
		return that.err
	}
	if _, ok := that.players[id]; !ok {
		return repository.ErrPlayerNotFound
	}
	delete(that.players, id)
	return nil
}

func TestPlayerService(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown player has no match", func(t *testing.T) {
		players := NewPlayerService(newMemoryPlayerRepo())

		key, err := players.ActiveMatch(ctx, "alice")

		require.NoError(t, err)
		assert.Empty(t, key)
	})

	t.Run("Join then leave", func(t *testing.T) {
		// Given: a player joined to a match
		repo := newMemoryPlayerRepo()
		players := NewPlayerService(repo)
		require.NoError(t, players.JoinMatch(ctx, "alice", "bot_alice", time.Minute))

		// When: the active match is read
		key, err := players.ActiveMatch(ctx, "alice")

		// Then: the binding is returned with its ttl
		require.NoError(t, err)
		assert.Equal(t, "bot_alice", key)
		assert.Equal(t, time.Minute, repo.ttls["alice"])

		// When: the player leaves twice
		require.NoError(t, players.LeaveMatch(ctx, "alice"))
		require.NoError(t, players.LeaveMatch(ctx, "alice"))

		// Then: no match is bound
		key, err = players.ActiveMatch(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, key)
	})

	t.Run("Storage errors are wrapped", func(t *testing.T) {
		repo := newMemoryPlayerRepo()
		repo.err = errRedisDown
		players := NewPlayerService(repo)

		_, err := players.ActiveMatch(ctx, "alice")
		require.ErrorIs(t, err, errRedisDown)

		err = players.JoinMatch(ctx, "alice", "1", 0)
		require.ErrorIs(t, err, errRedisDown)

		err = players.LeaveMatch(ctx, "alice")
		require.ErrorIs(t, err, errRedisDown)
	})
}
