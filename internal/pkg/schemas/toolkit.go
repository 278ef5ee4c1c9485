package schemas

type ToolkitProfessional struct {
	ID          FlexInt    `json:"id" validate:"required"`
	Profession  Profession `json:"profession" validate:"required,oneof=counselor psychologist"`
	User        User       `json:"user"`
	Description NullString `json:"description"`
}

type ToolkitVideo struct {
	ID    FlexInt    `json:"id"`
	Name  FlexString `json:"name"`
	Video string     `json:"video" validate:"required,url"`
}

type Toolkit struct {
	ID             FlexInt             `json:"id" validate:"required"`
	Title          string              `json:"title" validate:"required"`
	Description    string              `json:"description"`
	Professional   ToolkitProfessional `json:"professional"`
	ImageThumbnail NullString          `json:"image_thumbnail" validate:"omitempty,url"`
	Videos         []ToolkitVideo      `json:"videos" validate:"dive"`
}
