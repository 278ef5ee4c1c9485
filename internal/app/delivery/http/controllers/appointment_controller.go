package controllers

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/forms"
	"giya-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	Binder             *forms.Binder
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, binder *forms.Binder, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		Binder:             binder,
		InternalConfig:     internalConfig,
	}
}

// Home lists the session's appointments split into upcoming and past. The
// carer profile appointments page uses the same data.
func (ctrl *AppointmentController) Home(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.Home called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	groups, err := ctrl.AppointmentUsecase.ListForSession(ctx, session)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Home succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHomeSuccessMessage, groups)
}

func (ctrl *AppointmentController) Calendar(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.Calendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.Calendar(ctx, session)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsCalendarMessages, appointments)
}

// JoinCounseling reads the room code from the request body.
func (ctrl *AppointmentController) JoinCounseling(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.JoinCounseling called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CounselingCode)
	err := ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.counselingToken(w, r, request.Code)
}

// JoinCounselingByCode reads the room code from the URL path.
func (ctrl *AppointmentController) JoinCounselingByCode(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.JoinCounselingByCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	code := strings.TrimSpace(chi.URLParam(r, constvars.URLParamCode))
	if code == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamCode))
		return
	}

	ctrl.counselingToken(w, r, code)
}

func (ctrl *AppointmentController) counselingToken(w http.ResponseWriter, r *http.Request, code string) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	token, err := ctrl.AppointmentUsecase.CounselingToken(ctx, code)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCounselingTokenMessage, &responses.CounselingToken{Token: token})
}

func (ctrl *AppointmentController) Timeslots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.Timeslots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	professionalUserID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := new(requests.TimeslotQuery)
	err = ctrl.Binder.BindQuery(r, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ProfessionalTimeslots(ctx, professionalUserID, query)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Timeslots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProfessionalIDKey, professionalUserID),
		zap.Int(constvars.LoggingCountKey, len(result.Slots)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeslotsSuccessMessage, result)
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	professionalUserID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.BookAppointment)
	err = ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Book(ctx, session, professionalUserID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "appointment_booked", requestID,
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
		zap.Int(constvars.LoggingProfessionalIDKey, professionalUserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Cancel(ctx, session, appointmentID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, appointment)
}
