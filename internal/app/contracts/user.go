package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/schemas"
)

type UserUsecase interface {
	GetCurrentUser(ctx context.Context, session *models.Session) (*schemas.User, error)
	ListProfessionals(ctx context.Context, page int) (*schemas.Paginated[schemas.Professional], error)
	GetProfessional(ctx context.Context, userID int) (*responses.ProfessionalDetail, error)
	CreateProfessional(ctx context.Context, request *requests.CreateProfessional) error
	AdminUpdateUser(ctx context.Context, userID int, request *requests.AdminUpdateUser) error
	UpdateSettings(ctx context.Context, session *models.Session, request *requests.UpdateSettings) error
	UpdatePricing(ctx context.Context, session *models.Session, request *requests.UpdatePricing) error
}
