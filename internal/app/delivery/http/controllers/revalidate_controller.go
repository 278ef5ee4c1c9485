package controllers

import (
	"context"
	"crypto/subtle"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type RevalidateController struct {
	Log            *zap.Logger
	PageCache      contracts.PageCache
	InternalConfig *config.InternalConfig
	now            func() time.Time
}

func NewRevalidateController(logger *zap.Logger, pageCache contracts.PageCache, internalConfig *config.InternalConfig) *RevalidateController {
	return &RevalidateController{
		Log:            logger,
		PageCache:      pageCache,
		InternalConfig: internalConfig,
		now:            time.Now,
	}
}

// Revalidate drops the cached pages below the given path.
func (ctrl *RevalidateController) Revalidate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	path := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamPath))
	ctrl.Log.Info("RevalidateController.Revalidate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPathKey, path),
	)

	secret := ctrl.InternalConfig.App.RevalidateSecret
	if secret != "" {
		given := r.Header.Get(constvars.HeaderXRevalidateSecret)
		if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			utils.LogSecurityEvent(ctrl.Log, "revalidate_secret_mismatch", requestID, "medium")
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRevalidateSecret(nil))
			return
		}
	}

	if path == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRevalidatePath(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.PageCache.Invalidate(ctx, path)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RevalidateController.Revalidate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPathKey, path),
	)
	utils.BuildRawJSONResponse(w, constvars.StatusOK, &responses.Revalidate{
		Revalidated: true,
		Now:         ctrl.now().UnixMilli(),
	})
}
