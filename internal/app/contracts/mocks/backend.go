// Package mocks holds testify mocks of the backend and shared service
// contracts used across usecase tests.
package mocks

import (
	"context"
	"giya-service/internal/pkg/schemas"

	"github.com/stretchr/testify/mock"
)

type AuthBackend struct {
	mock.Mock
}

func (m *AuthBackend) Login(ctx context.Context, payload *schemas.LoginPayload) (*schemas.AuthResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.AuthResponse), args.Error(1)
}

func (m *AuthBackend) Register(ctx context.Context, payload *schemas.RegisterPayload) error {
	return m.Called(ctx, payload).Error(0)
}

type UsersBackend struct {
	mock.Mock
}

func (m *UsersBackend) Get(ctx context.Context, userID int) (*schemas.User, []byte, error) {
	args := m.Called(ctx, userID)
	var raw []byte
	if args.Get(1) != nil {
		raw = args.Get(1).([]byte)
	}
	if args.Get(0) == nil {
		return nil, raw, args.Error(2)
	}
	return args.Get(0).(*schemas.User), raw, args.Error(2)
}

func (m *UsersBackend) ListProfessionals(ctx context.Context, page int) (*schemas.Paginated[schemas.Professional], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Paginated[schemas.Professional]), args.Error(1)
}

func (m *UsersBackend) GetProfessional(ctx context.Context, userID int) (*schemas.Professional, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Professional), args.Error(1)
}

func (m *UsersBackend) RegisterProfessional(ctx context.Context, body []byte, contentType string) error {
	return m.Called(ctx, body, contentType).Error(0)
}

func (m *UsersBackend) AdminUpdate(ctx context.Context, userID int, body []byte, contentType string) error {
	return m.Called(ctx, userID, body, contentType).Error(0)
}

func (m *UsersBackend) UpdateSettings(ctx context.Context, userID int, body []byte, contentType string) error {
	return m.Called(ctx, userID, body, contentType).Error(0)
}

func (m *UsersBackend) UpdatePricing(ctx context.Context, userID int, payload *schemas.PricingPayload) error {
	return m.Called(ctx, userID, payload).Error(0)
}

func (m *UsersBackend) Favorites(ctx context.Context, userID int) ([]schemas.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Product), args.Error(1)
}

type AppointmentsBackend struct {
	mock.Mock
}

func (m *AppointmentsBackend) List(ctx context.Context, carerID, professionalID int) (*schemas.Paginated[schemas.Appointment], error) {
	args := m.Called(ctx, carerID, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Paginated[schemas.Appointment]), args.Error(1)
}

func (m *AppointmentsBackend) Create(ctx context.Context, payload *schemas.AppointmentPayload) (*schemas.Appointment, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Appointment), args.Error(1)
}

func (m *AppointmentsBackend) Cancel(ctx context.Context, appointmentID int) (*schemas.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Appointment), args.Error(1)
}

func (m *AppointmentsBackend) AvailableTimeslots(ctx context.Context, professionalID int, startDate, endDate string) ([]schemas.AvailableTimeslots, error) {
	args := m.Called(ctx, professionalID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.AvailableTimeslots), args.Error(1)
}

func (m *AppointmentsBackend) CounselingToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

type SchedulesBackend struct {
	mock.Mock
}

func (m *SchedulesBackend) Create(ctx context.Context, payload *schemas.SchedulePayload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *SchedulesBackend) Delete(ctx context.Context, scheduleID int) error {
	return m.Called(ctx, scheduleID).Error(0)
}

type MarketplaceBackend struct {
	mock.Mock
}

func (m *MarketplaceBackend) List(ctx context.Context, carerID int, category string) (*schemas.Paginated[schemas.Product], error) {
	args := m.Called(ctx, carerID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Paginated[schemas.Product]), args.Error(1)
}

func (m *MarketplaceBackend) Get(ctx context.Context, productID int) (*schemas.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Product), args.Error(1)
}

func (m *MarketplaceBackend) Create(ctx context.Context, body []byte, contentType string) (*schemas.Product, error) {
	args := m.Called(ctx, body, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Product), args.Error(1)
}

func (m *MarketplaceBackend) Update(ctx context.Context, productID int, body []byte, contentType string) (*schemas.Product, error) {
	args := m.Called(ctx, productID, body, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Product), args.Error(1)
}

func (m *MarketplaceBackend) Categories(ctx context.Context) ([]schemas.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Option), args.Error(1)
}

func (m *MarketplaceBackend) ReportReasons(ctx context.Context) ([]schemas.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Option), args.Error(1)
}

func (m *MarketplaceBackend) Report(ctx context.Context, productID int, payload *schemas.ReportPayload) error {
	return m.Called(ctx, productID, payload).Error(0)
}

func (m *MarketplaceBackend) ToggleFavorite(ctx context.Context, productID int) error {
	return m.Called(ctx, productID).Error(0)
}

type ToolkitsBackend struct {
	mock.Mock
}

func (m *ToolkitsBackend) List(ctx context.Context) (*schemas.Paginated[schemas.Toolkit], error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Paginated[schemas.Toolkit]), args.Error(1)
}

func (m *ToolkitsBackend) Get(ctx context.Context, toolkitID int) (*schemas.Toolkit, error) {
	args := m.Called(ctx, toolkitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Toolkit), args.Error(1)
}

func (m *ToolkitsBackend) Create(ctx context.Context, body []byte, contentType string) (*schemas.Toolkit, error) {
	args := m.Called(ctx, body, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Toolkit), args.Error(1)
}

func (m *ToolkitsBackend) Update(ctx context.Context, toolkitID int, body []byte, contentType string) (*schemas.Toolkit, error) {
	args := m.Called(ctx, toolkitID, body, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Toolkit), args.Error(1)
}
