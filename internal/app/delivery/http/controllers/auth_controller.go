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
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	Binder         *forms.Binder
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, binder *forms.Binder, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		Binder:         binder,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Login)
	err := ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeLoginRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie(response.Token, response.ExpiresAt))
	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, response.UserID),
		zap.String(constvars.LoggingRoleKey, response.Role),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Register)
	err := ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeRegisterRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err = ctrl.AuthUsecase.Register(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, nil)
}

// Logout always clears the cookie. A token that no longer resolves to a
// session is treated as already logged out.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	token := utils.SessionToken(r)
	if token != "" {
		session, err := ctrl.AuthUsecase.ResolveSession(ctx, token)
		if err == nil {
			err = ctrl.AuthUsecase.Logout(ctx, session.SessionID)
			if err != nil {
				respondError(ctrl.Log, w, err)
				return
			}
		}
	}

	http.SetCookie(w, ctrl.sessionCookie("", time.Unix(0, 0)))
	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
