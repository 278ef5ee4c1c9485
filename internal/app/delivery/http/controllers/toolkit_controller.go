package controllers

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/forms"
	"giya-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ToolkitController struct {
	Log            *zap.Logger
	ToolkitUsecase contracts.ToolkitUsecase
	Binder         *forms.Binder
	InternalConfig *config.InternalConfig
}

func NewToolkitController(logger *zap.Logger, toolkitUsecase contracts.ToolkitUsecase, binder *forms.Binder, internalConfig *config.InternalConfig) *ToolkitController {
	return &ToolkitController{
		Log:            logger,
		ToolkitUsecase: toolkitUsecase,
		Binder:         binder,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ToolkitController) ListToolkits(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ToolkitController.ListToolkits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	toolkits, err := ctrl.ToolkitUsecase.ListToolkits(ctx)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetToolkitsSuccessMessage, toolkits)
}

func (ctrl *ToolkitController) GetToolkit(w http.ResponseWriter, r *http.Request) {
	toolkitID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	toolkit, err := ctrl.ToolkitUsecase.GetToolkit(ctx, toolkitID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetToolkitSuccessMessage, toolkit)
}

func (ctrl *ToolkitController) CreateToolkit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ToolkitController.CreateToolkit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateToolkit)
	err := ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	toolkit, err := ctrl.ToolkitUsecase.CreateToolkit(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ToolkitController.CreateToolkit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateToolkitSuccessMessage, toolkit)
}

func (ctrl *ToolkitController) UpdateToolkit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ToolkitController.UpdateToolkit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	toolkitID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateToolkit)
	err = ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	toolkit, err := ctrl.ToolkitUsecase.UpdateToolkit(ctx, toolkitID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ToolkitController.UpdateToolkit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingToolkitIDKey, toolkitID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateToolkitSuccessMessage, toolkit)
}
