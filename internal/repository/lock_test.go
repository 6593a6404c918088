package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
	"github.com/rocketscienceinc/caro-backend/testing/suite"
)

func TestLockRepository_Acquire(t *testing.T) {
	t.Run("Acquire_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		lockRepo := NewLockRepository(st.Storage)

		// When: a free lock is acquired
		token, err := lockRepo.Acquire(ctx, "42", time.Minute)

		// Then: a token is returned
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Acquire_Busy", func(t *testing.T) {
		ctx, st := suite.New(t)

		lockRepo := NewLockRepository(st.Storage)

		// Given: a held lock
		_, err := lockRepo.Acquire(ctx, "42", time.Minute)
		require.NoError(t, err)

		// When: it is acquired again
		_, err = lockRepo.Acquire(ctx, "42", time.Minute)

		// Then: the match is busy
		require.ErrorIs(t, err, apperror.ErrMatchBusy)
	})

	t.Run("Acquire_AfterRelease", func(t *testing.T) {
		ctx, st := suite.New(t)

		lockRepo := NewLockRepository(st.Storage)

		// Given: a lock taken and released
		token, err := lockRepo.Acquire(ctx, "42", time.Minute)
		require.NoError(t, err)
		require.NoError(t, lockRepo.Release(ctx, "42", token))

		// Then: the key is gone
		assert.Empty(t, st.Keys(ctx, "lock:*"))

		// When: it is acquired again
		_, err = lockRepo.Acquire(ctx, "42", time.Minute)

		// Then: it succeeds
		require.NoError(t, err)
	})
}

func TestLockRepository_Release(t *testing.T) {
	t.Run("Release_WrongToken", func(t *testing.T) {
		ctx, st := suite.New(t)

		lockRepo := NewLockRepository(st.Storage)

		// Given: a lock held by someone else
		_, err := lockRepo.Acquire(ctx, "42", time.Minute)
		require.NoError(t, err)

		// When: it is released with another token
		err = lockRepo.Release(ctx, "42", "not-mine")

		// Then: the lock stays in place
		require.ErrorIs(t, err, ErrLockNotHeld)

		_, err = lockRepo.Acquire(ctx, "42", time.Minute)
		assert.ErrorIs(t, err, apperror.ErrMatchBusy)
	})
}
