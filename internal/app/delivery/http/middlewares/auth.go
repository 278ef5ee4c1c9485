package middlewares

import (
	"context"
	"errors"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/utils"
	"net/http"
	"path"

	"go.uber.org/zap"
)

var roleScopes = []string{
	constvars.RouteScopeAdmin,
	constvars.RouteScopeCounselor,
	constvars.RouteScopeCarer,
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	if session, ok := models.SessionFromContext(r.Context()); ok {
		return session, nil
	}
	token := utils.SessionToken(r)
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	ctx, cancel := context.WithTimeout(r.Context(), m.InternalConfig.App.RequestTimeout())
	defer cancel()
	return m.AuthUsecase.ResolveSession(ctx, token)
}

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := models.WithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) logoutPath() string {
	return path.Join(m.InternalConfig.App.MountPrefix(), "logout")
}

// RoleGate lets a request into /admin, /counselor or /carer only when the
// session's role is allowed there. Anything else is sent to logout.
func (m *Middlewares) RoleGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())
		scoped := utils.ScopedPath(r.URL.Path, m.InternalConfig.App.MountPrefix())
		if !utils.InScope(scoped, roleScopes...) {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.resolveSession(r)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "role_gate_no_session", requestID, "low",
				zap.String(constvars.LoggingEndpointKey, scoped),
				zap.Error(err),
			)
			http.Redirect(w, r, m.logoutPath(), http.StatusSeeOther)
			return
		}

		allowed, err := m.Enforcer.Enforce(session.Role, scoped)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleEnforce(err))
			return
		}
		if !allowed {
			utils.LogSecurityEvent(m.Log, "role_gate_denied", requestID, "medium",
				zap.Int(constvars.LoggingUserIDKey, session.UserID),
				zap.String(constvars.LoggingRoleKey, session.Role),
				zap.String(constvars.LoggingEndpointKey, scoped),
			)
			http.Redirect(w, r, m.logoutPath(), http.StatusSeeOther)
			return
		}

		ctx := models.WithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
