package contracts

import (
	"context"
	"giya-service/internal/pkg/schemas"
	"net/url"
)

type BackendClient interface {
	Do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) ([]byte, error)
}

type AuthBackend interface {
	Login(ctx context.Context, payload *schemas.LoginPayload) (*schemas.AuthResponse, error)
	Register(ctx context.Context, payload *schemas.RegisterPayload) error
}

type UsersBackend interface {
	Get(ctx context.Context, userID int) (*schemas.User, []byte, error)
	ListProfessionals(ctx context.Context, page int) (*schemas.Paginated[schemas.Professional], error)
	GetProfessional(ctx context.Context, userID int) (*schemas.Professional, error)
	RegisterProfessional(ctx context.Context, body []byte, contentType string) error
	AdminUpdate(ctx context.Context, userID int, body []byte, contentType string) error
	UpdateSettings(ctx context.Context, userID int, body []byte, contentType string) error
	UpdatePricing(ctx context.Context, userID int, payload *schemas.PricingPayload) error
	Favorites(ctx context.Context, userID int) ([]schemas.Product, error)
}

type AppointmentsBackend interface {
	List(ctx context.Context, carerID, professionalID int) (*schemas.Paginated[schemas.Appointment], error)
	Create(ctx context.Context, payload *schemas.AppointmentPayload) (*schemas.Appointment, error)
	Cancel(ctx context.Context, appointmentID int) (*schemas.Appointment, error)
	AvailableTimeslots(ctx context.Context, professionalID int, startDate, endDate string) ([]schemas.AvailableTimeslots, error)
	CounselingToken(ctx context.Context, code string) (string, error)
}

type SchedulesBackend interface {
	Create(ctx context.Context, payload *schemas.SchedulePayload) error
	Delete(ctx context.Context, scheduleID int) error
}

type MarketplaceBackend interface {
	List(ctx context.Context, carerID int, category string) (*schemas.Paginated[schemas.Product], error)
	Get(ctx context.Context, productID int) (*schemas.Product, error)
	Create(ctx context.Context, body []byte, contentType string) (*schemas.Product, error)
	Update(ctx context.Context, productID int, body []byte, contentType string) (*schemas.Product, error)
	Categories(ctx context.Context) ([]schemas.Option, error)
	ReportReasons(ctx context.Context) ([]schemas.Option, error)
	Report(ctx context.Context, productID int, payload *schemas.ReportPayload) error
	ToggleFavorite(ctx context.Context, productID int) error
}

type ToolkitsBackend interface {
	List(ctx context.Context) (*schemas.Paginated[schemas.Toolkit], error)
	Get(ctx context.Context, toolkitID int) (*schemas.Toolkit, error)
	Create(ctx context.Context, body []byte, contentType string) (*schemas.Toolkit, error)
	Update(ctx context.Context, toolkitID int, body []byte, contentType string) (*schemas.Toolkit, error)
}
