package requests

import "giya-service/internal/pkg/forms"

type CreateProfessional struct {
	Email          string     `schema:"email" validate:"required,email"`
	FirstName      string     `schema:"first_name" validate:"required"`
	LastName       string     `schema:"last_name" validate:"required"`
	Password       string     `schema:"password" validate:"required"`
	Profession     string     `schema:"profession" validate:"required,oneof=counselor psychologist"`
	Description    string     `schema:"description"`
	Rate           float64    `schema:"rate" validate:"gte=0"`
	Specialization string     `schema:"specialization"`
	ProfilePhoto   forms.File `schema:"profile_photo" validate:"required" accept:"image"`
}

type AdminUpdateUser struct {
	Email          string     `schema:"email" validate:"omitempty,email"`
	FirstName      string     `schema:"first_name"`
	LastName       string     `schema:"last_name"`
	Profession     string     `schema:"profession" validate:"omitempty,oneof=counselor psychologist"`
	Description    string     `schema:"description"`
	Rate           float64    `schema:"rate" validate:"gte=0"`
	Specialization string     `schema:"specialization"`
	ProfilePhoto   forms.File `schema:"profile_photo" accept:"image"`
}

type UpdateSettings struct {
	FirstName       string     `schema:"first_name" validate:"required"`
	LastName        string     `schema:"last_name" validate:"required"`
	Email           string     `schema:"email" validate:"required,email"`
	Description     string     `schema:"description"`
	Password        string     `schema:"password"`
	ConfirmPassword string     `schema:"confirm_password" validate:"eqfield=Password"`
	ProfilePhoto    forms.File `schema:"profile_photo" accept:"image"`
}

type UpdatePricing struct {
	Price float64 `json:"price" schema:"price" validate:"gte=0"`
}

type StageUpload struct {
	File forms.File `schema:"file" validate:"required" accept:"media"`
}
