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

type UploadController struct {
	Log            *zap.Logger
	UploadUsecase  contracts.UploadUsecase
	Binder         *forms.Binder
	InternalConfig *config.InternalConfig
}

func NewUploadController(logger *zap.Logger, uploadUsecase contracts.UploadUsecase, binder *forms.Binder, internalConfig *config.InternalConfig) *UploadController {
	return &UploadController{
		Log:            logger,
		UploadUsecase:  uploadUsecase,
		Binder:         binder,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UploadController) Stage(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("UploadController.Stage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.StageUpload)
	err = ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	staged, err := ctrl.UploadUsecase.Stage(ctx, session, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("UploadController.Stage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUploadIDKey, staged.ID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StageUploadSuccessMessage, staged)
}
