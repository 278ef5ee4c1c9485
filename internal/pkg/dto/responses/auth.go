package responses

import "time"

type Login struct {
	Token          string    `json:"token"`
	Role           string    `json:"role"`
	UserID         int       `json:"user_id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	ProfessionalID int       `json:"professional_id,omitempty"`
	CarerID        int       `json:"carer_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}
