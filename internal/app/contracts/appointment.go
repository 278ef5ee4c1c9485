package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/schemas"
)

type AppointmentUsecase interface {
	ListForSession(ctx context.Context, session *models.Session) (*responses.AppointmentGroups, error)
	Calendar(ctx context.Context, session *models.Session) ([]schemas.Appointment, error)
	CounselingToken(ctx context.Context, code string) (string, error)
	ProfessionalTimeslots(ctx context.Context, professionalUserID int, query *requests.TimeslotQuery) (*responses.ProfessionalTimeslots, error)
	Book(ctx context.Context, session *models.Session, professionalUserID int, request *requests.BookAppointment) (*schemas.Appointment, error)
	Cancel(ctx context.Context, session *models.Session, appointmentID int) (*schemas.Appointment, error)
}
