package locker

import (
	"context"
	"testing"
	"time"

	"giya-service/internal/app/services/shared/redis/redistest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "availability:submit:7"

	t.Run("second TryLock fails while held", func(t *testing.T) {
		svc := NewLockService(redistest.New(), zap.NewNop())

		ok, value, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, value)

		ok, _, err = svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Unlock frees the key for the owner", func(t *testing.T) {
		repo := redistest.New()
		svc := NewLockService(repo, zap.NewNop())

		_, value, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.NoError(t, svc.Unlock(ctx, key, value))
		assert.False(t, repo.Has(key))

		ok, _, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Unlock by a stranger is rejected", func(t *testing.T) {
		repo := redistest.New()
		svc := NewLockService(repo, zap.NewNop())

		_, _, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		err = svc.Unlock(ctx, key, "someone-else")
		assert.Error(t, err)
		assert.True(t, repo.Has(key))
	})

	t.Run("Unlock of a missing lock is a no-op", func(t *testing.T) {
		svc := NewLockService(redistest.New(), zap.NewNop())
		assert.NoError(t, svc.Unlock(ctx, key, "gone"))
	})

	t.Run("Refresh extends an owned lock", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		repo := redistest.New()
		repo.Now = func() time.Time { return now }
		svc := NewLockService(repo, zap.NewNop())

		_, value, err := svc.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		now = now.Add(50 * time.Second)
		require.NoError(t, svc.Refresh(ctx, key, value, time.Minute))

		now = now.Add(30 * time.Second)
		assert.True(t, repo.Has(key))
	})

	t.Run("Refresh of an expired lock fails", func(t *testing.T) {
		svc := NewLockService(redistest.New(), zap.NewNop())
		assert.Error(t, svc.Refresh(ctx, key, "expired", time.Minute))
	})
}
