package reports

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository contracts.ReportRepository
	PageCache        contracts.PageCache
	BaseURL          string
	Log              *zap.Logger
}

// NewReportUsecase builds pagination links under baseURL, the public url of
// the admin reports listing.
func NewReportUsecase(
	reportRepository contracts.ReportRepository,
	pageCache contracts.PageCache,
	baseURL string,
	logger *zap.Logger,
) contracts.ReportUsecase {
	return &reportUsecase{
		ReportRepository: reportRepository,
		PageCache:        pageCache,
		BaseURL:          baseURL,
		Log:              logger,
	}
}

func toResponse(report models.ProductReport) responses.ProductReport {
	return responses.ProductReport{
		ID:              report.ID.Hex(),
		ProductID:       report.ProductID,
		ProductName:     report.ProductName,
		ProductCategory: report.ProductCategory,
		Reasons:         report.Reasons,
		ReporterUserID:  report.ReporterUserID,
		ReporterRole:    report.ReporterRole,
		ReportedAt:      report.ReportedAt,
	}
}

func (uc *reportUsecase) ListReports(ctx context.Context, pagination *requests.Pagination) ([]responses.ProductReport, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.ListReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", pagination.Page),
		zap.Int("page_size", pagination.PageSize),
	)

	reports, total, err := uc.ReportRepository.List(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.Log.Error("reportUsecase.ListReports error fetching reports",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	out := make([]responses.ProductReport, 0, len(reports))
	for _, report := range reports {
		out = append(out, toResponse(report))
	}

	uc.Log.Info("reportUsecase.ListReports succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(out)),
	)
	return out, utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, uc.BaseURL), nil
}

func (uc *reportUsecase) DismissReport(ctx context.Context, id string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.DismissReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, id),
	)

	err := uc.ReportRepository.DeleteByID(ctx, id)
	if err != nil {
		uc.Log.Error("reportUsecase.DismissReport error deleting report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.PageCache.Invalidate(ctx, constvars.PageAdminReports)
	if err != nil {
		uc.Log.Warn("reportUsecase.DismissReport error invalidating page cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, constvars.PageAdminReports),
			zap.Error(err),
		)
	}

	uc.Log.Info("reportUsecase.DismissReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
