package auth

import (
	"context"
	"errors"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/app/services/backend"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthBackend    contracts.AuthBackend
	UsersBackend   contracts.UsersBackend
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewAuthUsecase(
	authBackend contracts.AuthBackend,
	usersBackend contracts.UsersBackend,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthBackend:    authBackend,
		UsersBackend:   usersBackend,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	authResponse, err := uc.AuthBackend.Login(ctx, &schemas.LoginPayload{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) &&
			(customErr.StatusCode == constvars.StatusBadRequest || customErr.StatusCode == constvars.StatusUnauthorized) {
			return nil, exceptions.ErrInvalidUsernameOrPassword(err)
		}
		uc.Log.Error("authUsecase.Login error calling backend login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// the fresh token is not in any session yet
	user, _, err := uc.UsersBackend.Get(backend.WithToken(ctx, authResponse.Token), authResponse.ID)
	if err != nil {
		uc.Log.Error("authUsecase.Login error fetching user profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, authResponse.ID),
			zap.Error(err),
		)
		return nil, err
	}

	session := &models.Session{
		SessionID:      utils.GenerateSessionID(),
		UserID:         authResponse.ID,
		Role:           string(authResponse.Role),
		Email:          authResponse.User.Email,
		FirstName:      authResponse.User.FirstName,
		LastName:       authResponse.User.LastName,
		IsStaff:        authResponse.User.IsStaff,
		BackendToken:   authResponse.Token,
		ProfessionalID: user.ProfessionalID.Int(),
		CarerID:        user.CarerID.Int(),
		ExpiresAt:      uc.now().Add(uc.InternalConfig.Session.TTL()),
	}
	err = uc.SessionService.Create(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	return &responses.Login{
		Token:          token,
		Role:           session.Role,
		UserID:         session.UserID,
		Email:          session.Email,
		FirstName:      session.FirstName,
		LastName:       session.LastName,
		ProfessionalID: session.ProfessionalID,
		CarerID:        session.CarerID,
		ExpiresAt:      session.ExpiresAt,
	}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.AuthBackend.Register(ctx, &schemas.RegisterPayload{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  request.Password,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling backend register",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.Delete(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return uc.SessionService.Get(ctx, sessionID)
}
