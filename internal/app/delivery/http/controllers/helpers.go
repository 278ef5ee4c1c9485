package controllers

import (
	"context"
	"errors"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// respondError renders err, mapping an expired deadline to 504.
func respondError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func sessionFrom(r *http.Request) (*models.Session, error) {
	session, ok := models.SessionFromContext(r.Context())
	if !ok {
		return nil, exceptions.ErrMissingSession(nil)
	}
	return session, nil
}

func idParam(r *http.Request) (int, error) {
	id, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return id, nil
}
