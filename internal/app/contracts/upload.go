package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
)

type UploadUsecase interface {
	Stage(ctx context.Context, session *models.Session, request *requests.StageUpload) (*responses.StagedUpload, error)
	PruneStaged(ctx context.Context) (int, error)
}
