package auth

import (
	"context"
	"errors"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts/mocks"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase() (*authUsecase, *mocks.AuthBackend, *mocks.UsersBackend, *mocks.SessionService) {
	authBackend := new(mocks.AuthBackend)
	usersBackend := new(mocks.UsersBackend)
	sessionService := new(mocks.SessionService)
	internalConfig := &config.InternalConfig{
		JWT:     config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
		Session: config.AppSession{ExpiredTimeInHours: 2},
	}
	uc := NewAuthUsecase(authBackend, usersBackend, sessionService, internalConfig, zap.NewNop()).(*authUsecase)
	uc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) }
	return uc, authBackend, usersBackend, sessionService
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Run("creates a session carrying the backend token", func(t *testing.T) {
		uc, authBackend, usersBackend, sessionService := newTestUsecase()

		authBackend.On("Login", mock.Anything, &schemas.LoginPayload{Username: "ana", Password: "pw"}).
			Return(&schemas.AuthResponse{
				ID:    7,
				Role:  schemas.RoleProfessional,
				User:  schemas.AuthUser{ID: 7, Email: "ana@giya.ph", FirstName: "Ana"},
				Token: "backend-token",
			}, nil)
		usersBackend.On("Get", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasSession := models.SessionFromContext(ctx)
			return !hasSession
		}), 7).Return(&schemas.User{ID: 7, ProfessionalID: 3}, nil, nil)

		var stored *models.Session
		sessionService.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Session) }).
			Return(nil)

		result, err := uc.Login(context.Background(), &requests.Login{Username: "ana", Password: "pw"})
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.Equal(t, "backend-token", stored.BackendToken)
		assert.Equal(t, 3, stored.ProfessionalID)
		assert.Equal(t, constvars.RoleProfessional, stored.Role)
		assert.Equal(t, uc.now().Add(2*time.Hour), stored.ExpiresAt)

		sessionID, err := utils.ParseJWT(result.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, stored.SessionID, sessionID)
		assert.Equal(t, 3, result.ProfessionalID)
	})

	t.Run("maps a rejected login to invalid credentials", func(t *testing.T) {
		uc, authBackend, _, _ := newTestUsecase()
		backendErr := exceptions.ErrBackendStatus(errors.New("bad"), constvars.StatusBadRequest, "Unable to log in", "POST", "/auth/login")
		authBackend.On("Login", mock.Anything, mock.Anything).Return(nil, backendErr)

		_, err := uc.Login(context.Background(), &requests.Login{Username: "ana", Password: "nope"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
	})

	t.Run("passes a backend outage through", func(t *testing.T) {
		uc, authBackend, _, _ := newTestUsecase()
		backendErr := exceptions.ErrSendHTTPRequest(errors.New("dial tcp"))
		authBackend.On("Login", mock.Anything, mock.Anything).Return(nil, backendErr)

		_, err := uc.Login(context.Background(), &requests.Login{Username: "ana", Password: "pw"})
		assert.Same(t, backendErr, err)
	})
}

func TestAuthUsecase_ResolveSession(t *testing.T) {
	uc, _, _, sessionService := newTestUsecase()
	token, err := utils.GenerateSessionJWT("abc", "test-secret", 1)
	require.NoError(t, err)
	sessionService.On("Get", mock.Anything, "abc").Return(&models.Session{SessionID: "abc"}, nil)

	session, err := uc.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "abc", session.SessionID)

	_, err = uc.ResolveSession(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestAuthUsecase_Logout(t *testing.T) {
	uc, _, _, sessionService := newTestUsecase()
	sessionService.On("Delete", mock.Anything, "abc").Return(nil)

	require.NoError(t, uc.Logout(context.Background(), "abc"))
	sessionService.AssertExpectations(t)
}
