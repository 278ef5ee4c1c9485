package models

import (
	"context"
	"giya-service/internal/pkg/constvars"
	"time"
)

// Session is the request-scoped identity of a logged in user. It is stored
// in redis and carries the backend token used on the user's behalf.
type Session struct {
	SessionID      string    `json:"session_id"`
	UserID         int       `json:"user_id"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	IsStaff        bool      `json:"is_staff"`
	BackendToken   string    `json:"backend_token"`
	ProfessionalID int       `json:"professional_id,omitempty"`
	CarerID        int       `json:"carer_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == constvars.RoleAdmin
}

func (s *Session) IsProfessional() bool {
	return s != nil && s.Role == constvars.RoleProfessional
}

func (s *Session) IsCarer() bool {
	return s != nil && s.Role == constvars.RoleCarer
}

// CarerIDRef returns a pointer to the carer id, or nil when the user has no
// carer profile.
func (s *Session) CarerIDRef() *int {
	if s == nil || s.CarerID == 0 {
		return nil
	}
	id := s.CarerID
	return &id
}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*Session)
	return session, ok && session != nil
}
