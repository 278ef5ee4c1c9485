package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"giya-service/internal/app/models"
	"giya-service/internal/app/services/shared/redis/redistest"
	"giya-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		repo := redistest.New()
		svc := NewSessionService(repo)
		session := &models.Session{
			SessionID:      "abc",
			UserID:         4,
			Role:           "professional",
			Email:          "dr@giya.test",
			BackendToken:   "tok",
			ProfessionalID: 11,
			ExpiresAt:      time.Now().Add(time.Hour),
		}
		require.NoError(t, svc.Create(ctx, session))
		assert.True(t, repo.Has("session:abc"))

		got, err := svc.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 11, got.ProfessionalID)
		assert.Equal(t, "tok", got.BackendToken)
		assert.True(t, got.IsProfessional())

		require.NoError(t, svc.Delete(ctx, "abc"))
		_, err = svc.Get(ctx, "abc")
		assert.Error(t, err)
	})

	t.Run("expired session is not stored", func(t *testing.T) {
		svc := NewSessionService(redistest.New())
		err := svc.Create(ctx, &models.Session{SessionID: "old", ExpiresAt: time.Now().Add(-time.Minute)})
		assert.Error(t, err)
	})

	t.Run("unknown session is unauthorized", func(t *testing.T) {
		svc := NewSessionService(redistest.New())
		_, err := svc.Get(ctx, "missing")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 401, customErr.StatusCode)
	})
}
