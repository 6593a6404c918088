package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
	"github.com/rocketscienceinc/caro-backend/internal/pkg"
)

var ErrLockNotHeld = errors.New("lock is not held")

// releaseScript deletes the lock only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockRepository serializes operations on one match or one player across processes.
type LockRepository interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	Release(ctx context.Context, key, token string) error
}

type dbLock struct {
	client *redis.Client
}

func NewLockRepository(client *redis.Client) LockRepository {
	return &dbLock{
		client: client,
	}
}

// Acquire - takes the lock on key and returns the token needed to release it.
// Returns apperror.ErrMatchBusy when somebody else holds it.
func (that *dbLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := pkg.GenerateNewSessionID()

	ok, err := that.client.SetNX(ctx, lockKey(key), token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !ok {
		return "", apperror.ErrMatchBusy
	}

	return token, nil
}

func (that *dbLock) Release(ctx context.Context, key, token string) error {
	released, err := releaseScript.Run(ctx, that.client, []string{lockKey(key)}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	if released == 0 {
		return ErrLockNotHeld
	}

	return nil
}

func lockKey(key string) string {
	return "lock:" + key
}
