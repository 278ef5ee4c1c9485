package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	// Editor returns nil without error when the session has no
	// professional profile.
	Editor(ctx context.Context, session *models.Session, query *requests.AvailabilityQuery) (*responses.AvailabilityEditor, error)
	ToggleBand(ctx context.Context, request *requests.ToggleBand) (*responses.ToggleBand, error)
	Submit(ctx context.Context, session *models.Session, request *requests.SubmitAvailability) (*responses.SubmitAvailability, error)
}
