package contracts

import (
	"context"
	"giya-service/internal/app/models"
)

type SessionService interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
