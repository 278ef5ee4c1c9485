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

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	Binder              *forms.Binder
	InternalConfig      *config.InternalConfig
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, binder *forms.Binder, internalConfig *config.InternalConfig) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		Binder:              binder,
		InternalConfig:      internalConfig,
	}
}

// Editor answers 204 when the counselor has no professional profile yet.
func (ctrl *AvailabilityController) Editor(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AvailabilityController.Editor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := new(requests.AvailabilityQuery)
	err = ctrl.Binder.BindQuery(r, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	editor, err := ctrl.AvailabilityUsecase.Editor(ctx, session, query)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}
	if editor == nil {
		w.WriteHeader(constvars.StatusNoContent)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, editor)
}

func (ctrl *AvailabilityController) ToggleBand(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AvailabilityController.ToggleBand called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ToggleBand)
	err := ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AvailabilityUsecase.ToggleBand(r.Context(), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleBandSuccessMessage, result)
}

// Submit runs under its own deadline because a repeating submission can
// fan out into many backend writes.
func (ctrl *AvailabilityController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AvailabilityController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SubmitAvailability)
	err = ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.Availability.SubmitTimeout())
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.Submit(ctx, session, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingRepeatTypeKey, request.RepeatType),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveAvailabilitySuccessMessage, result)
}
