package controllers

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ReportController.ListReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	reports, paginationData, err := ctrl.ReportUsecase.ListReports(ctx, pagination)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReportController.ListReports succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(reports)),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, paginationData, reports)
}

// DismissReport takes the mongo object id, not a backend numeric id.
func (ctrl *ReportController) DismissReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	reportID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("ReportController.DismissReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.ReportUsecase.DismissReport(ctx, reportID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReportController.DismissReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DismissReportSuccessMessage, nil)
}
