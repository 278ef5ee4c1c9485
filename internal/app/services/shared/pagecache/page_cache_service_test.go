package pagecache

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/app/services/shared/redis/redistest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache(t *testing.T) {
	ctx := context.Background()
	page := &models.CachedPage{StatusCode: 200, ContentType: "application/json", Body: []byte(`{"ok":true}`)}

	t.Run("entries are keyed by query and user", func(t *testing.T) {
		cache := NewPageCache(redistest.New(), time.Minute)
		require.NoError(t, cache.Store(ctx, "/carer/marketplace", "category=toys", "5", page))

		got, err := cache.Lookup(ctx, "/carer/marketplace", "category=toys", "5")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, `{"ok":true}`, string(got.Body))

		miss, err := cache.Lookup(ctx, "/carer/marketplace", "category=toys", "6")
		require.NoError(t, err)
		assert.Nil(t, miss)
	})

	t.Run("invalidating a path drops its sub-paths", func(t *testing.T) {
		repo := redistest.New()
		cache := NewPageCache(repo, time.Minute)
		require.NoError(t, cache.Store(ctx, "/carer/profile/appointments", "", "5", page))
		require.NoError(t, cache.Store(ctx, "/carer/profile", "", "5", page))
		require.NoError(t, cache.Store(ctx, "/carer/home", "", "5", page))

		require.NoError(t, cache.Invalidate(ctx, "/carer/profile"))

		assert.False(t, repo.Has("pagecache:entry:/carer/profile/appointments?#5"))
		assert.False(t, repo.Has("pagecache:entry:/carer/profile?#5"))
		assert.True(t, repo.Has("pagecache:entry:/carer/home?#5"))
	})

	t.Run("the root clears everything", func(t *testing.T) {
		repo := redistest.New()
		cache := NewPageCache(repo, time.Minute)
		require.NoError(t, cache.Store(ctx, "/me", "", "1", page))
		require.NoError(t, cache.Store(ctx, "/admin/users/", "", "1", page))

		require.NoError(t, cache.Invalidate(ctx, "/"))

		assert.False(t, repo.Has("pagecache:entry:/me?#1"))
		assert.False(t, repo.Has("pagecache:entry:/admin/users?#1"))
	})

	t.Run("a zero ttl disables caching", func(t *testing.T) {
		repo := redistest.New()
		cache := NewPageCache(repo, 0)
		require.NoError(t, cache.Store(ctx, "/me", "", "1", page))
		assert.False(t, repo.Has("pagecache:entry:/me?#1"))
	})
}
