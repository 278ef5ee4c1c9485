package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"io"
	"mime/multipart"
	"time"
)

type StorageService interface {
	Stage(ctx context.Context, header *multipart.FileHeader, contentType string) (*models.StagedUpload, error)
	PresignedURL(ctx context.Context, objectName string) (string, error)
	OpenStaged(ctx context.Context, uploadID string) (io.ReadCloser, string, error)
	PruneStaged(ctx context.Context, olderThan time.Time) (int, error)
}
