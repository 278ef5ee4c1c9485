package requests

import "giya-service/internal/pkg/forms"

type MarketplaceQuery struct {
	Category string `schema:"category"`
}

type CreateProduct struct {
	Name          string     `schema:"name" validate:"required"`
	Price         string     `schema:"price" validate:"required,numeric"`
	Location      string     `schema:"location" validate:"required"`
	Category      string     `schema:"category"`
	Description   string     `schema:"description"`
	ContactNumber string     `schema:"contact_number" validate:"required"`
	FacebookURL   string     `schema:"facebook_url" validate:"omitempty,url"`
	Image         forms.File `schema:"image" validate:"required" accept:"image"`
}

type UpdateProduct struct {
	Name          string     `schema:"name"`
	Price         string     `schema:"price" validate:"omitempty,numeric"`
	Location      string     `schema:"location"`
	Category      string     `schema:"category"`
	Description   string     `schema:"description"`
	ContactNumber string     `schema:"contact_number"`
	FacebookURL   string     `schema:"facebook_url" validate:"omitempty,url"`
	Image         forms.File `schema:"image" accept:"image"`
}

type ReportProduct struct {
	Reasons []string `json:"reasons" schema:"reasons" validate:"required,min=1,dive,required"`
}
