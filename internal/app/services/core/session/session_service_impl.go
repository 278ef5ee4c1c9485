package session

import (
	"context"
	"errors"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionRedisKeyPrefix + sessionID
}

func (svc *sessionService) Create(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrInvalidSession(errors.New("session already expired"))
	}
	return svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

// Get loads a session. A missing or expired session is reported as
// ErrInvalidSession so callers can treat it like a bad token.
func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(errors.New("session not found"))
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) Delete(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
