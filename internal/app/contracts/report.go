package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
)

type ReportRepository interface {
	Insert(ctx context.Context, report *models.ProductReport) (string, error)
	List(ctx context.Context, page, pageSize int) ([]models.ProductReport, int64, error)
	DeleteByID(ctx context.Context, id string) error
}

type ReportUsecase interface {
	ListReports(ctx context.Context, pagination *requests.Pagination) ([]responses.ProductReport, *responses.Pagination, error)
	DismissReport(ctx context.Context, id string) error
}
