package requests

import "giya-service/internal/pkg/forms"

type ToolkitVideo struct {
	Name  string     `schema:"name"`
	Video forms.File `schema:"video" validate:"required" accept:"video"`
}

type CreateToolkit struct {
	Title          string         `schema:"title" validate:"required,max=200"`
	Description    string         `schema:"description" validate:"required"`
	ProfessionalID int            `schema:"professional_id" validate:"required,gt=0"`
	ImageThumbnail forms.File     `schema:"image_thumbnail" validate:"required" accept:"image"`
	Videos         []ToolkitVideo `schema:"videos" validate:"dive"`
}

type UpdateToolkit struct {
	Title          string         `schema:"title" validate:"omitempty,max=200"`
	Description    string         `schema:"description"`
	ProfessionalID int            `schema:"professional_id" validate:"omitempty,gt=0"`
	ImageThumbnail forms.File     `schema:"image_thumbnail" accept:"image"`
	Videos         []ToolkitVideo `schema:"videos" validate:"dive"`
	DeleteVideoIDs []int          `schema:"delete_video_ids" validate:"dive,gt=0"`
}
