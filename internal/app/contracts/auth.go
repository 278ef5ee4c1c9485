package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.Register) error
	Logout(ctx context.Context, sessionID string) error
	// ResolveSession turns a session JWT into the stored session.
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}
