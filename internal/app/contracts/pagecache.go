package contracts

import (
	"context"
	"giya-service/internal/app/models"
)

type PageCache interface {
	Lookup(ctx context.Context, path, query, userKey string) (*models.CachedPage, error)
	Store(ctx context.Context, path, query, userKey string, page *models.CachedPage) error
	Invalidate(ctx context.Context, paths ...string) error
}
