package ratelimiter

import (
	"context"
	"testing"
	"time"

	"giya-service/internal/app/services/shared/redis/redistest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResourceLimiter_ApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 10, 0, 5, 0, time.UTC)
	limiter := NewResourceLimiter(redistest.New(), zap.NewNop())

	input := func(at time.Time) *ApplyResourceLimiterInput {
		return &ApplyResourceLimiterInput{
			ResourceName:      "42",
			LimiterGroupName:  "uploads",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            at,
		}
	}

	for i := 0; i < 2; i++ {
		out, err := limiter.ApplyResourceLimiter(ctx, input(now))
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.ApplyResourceLimiter(ctx, input(now))
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, 56, out.RetryAfterSecs)

	out, err = limiter.ApplyResourceLimiter(ctx, input(now.Add(time.Minute)))
	require.NoError(t, err)
	assert.True(t, out.Allowed)

	t.Run("zero quota disables the limit", func(t *testing.T) {
		in := input(now)
		in.MaxQuota = 0
		out, err := limiter.ApplyResourceLimiter(ctx, in)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := limiter.ApplyResourceLimiter(ctx, nil)
		assert.Error(t, err)
	})
}
