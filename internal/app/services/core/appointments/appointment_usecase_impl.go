package appointments

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/app/services/shared/notifier"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentsBackend contracts.AppointmentsBackend
	UsersBackend        contracts.UsersBackend
	PageCache           contracts.PageCache
	Notifier            contracts.Notifier
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	location            *time.Location
	now                 func() time.Time
}

func NewAppointmentUsecase(
	appointmentsBackend contracts.AppointmentsBackend,
	usersBackend contracts.UsersBackend,
	pageCache contracts.PageCache,
	notificationQueue contracts.Notifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentsBackend: appointmentsBackend,
		UsersBackend:        usersBackend,
		PageCache:           pageCache,
		Notifier:            notificationQueue,
		InternalConfig:      internalConfig,
		Log:                 logger,
		location:            utils.LoadLocation(internalConfig.App.Timezone),
		now:                 time.Now,
	}
}

// fetch lists the appointments visible to the session, already shifted for
// display.
func (uc *appointmentUsecase) fetch(ctx context.Context, session *models.Session) ([]schemas.Appointment, error) {
	carerID, professionalID := 0, 0
	switch {
	case session.IsProfessional():
		if session.ProfessionalID == 0 {
			return nil, exceptions.ErrMissingProfessional(nil)
		}
		professionalID = session.ProfessionalID
	case session.IsCarer():
		if session.CarerID == 0 {
			return nil, exceptions.ErrMissingCarer(nil)
		}
		carerID = session.CarerID
	}

	page, err := uc.AppointmentsBackend.List(ctx, carerID, professionalID)
	if err != nil {
		return nil, err
	}

	shift := uc.InternalConfig.Backend.AppointmentTimeShift()
	appointments := make([]schemas.Appointment, 0, len(page.Results))
	for _, appointment := range page.Results {
		appointment.Shift(shift)
		appointments = append(appointments, appointment)
	}
	return appointments, nil
}

func (uc *appointmentUsecase) invalidate(ctx context.Context, paths ...string) {
	err := uc.PageCache.Invalidate(ctx, paths...)
	if err != nil {
		uc.Log.Warn("appointmentUsecase error invalidating page cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Strings(constvars.LoggingPathKey, paths),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) ListForSession(ctx context.Context, session *models.Session) (*responses.AppointmentGroups, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListForSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	appointments, err := uc.fetch(ctx, session)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListForSession error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	groups := &responses.AppointmentGroups{
		Upcoming: []schemas.Appointment{},
		Past:     []schemas.Appointment{},
	}
	for _, appointment := range appointments {
		if appointment.Upcoming(now) {
			groups.Upcoming = append(groups.Upcoming, appointment)
		} else {
			groups.Past = append(groups.Past, appointment)
		}
	}
	sort.SliceStable(groups.Upcoming, func(i, j int) bool {
		return groups.Upcoming[i].AppointmentTime.Before(groups.Upcoming[j].AppointmentTime)
	})
	sort.SliceStable(groups.Past, func(i, j int) bool {
		return groups.Past[i].AppointmentTime.After(groups.Past[j].AppointmentTime)
	})

	uc.Log.Info("appointmentUsecase.ListForSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return groups, nil
}

func (uc *appointmentUsecase) Calendar(ctx context.Context, session *models.Session) ([]schemas.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Calendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.fetch(ctx, session)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Calendar error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].AppointmentTime.Before(appointments[j].AppointmentTime)
	})

	uc.Log.Info("appointmentUsecase.Calendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *appointmentUsecase) CounselingToken(ctx context.Context, code string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CounselingToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := uc.AppointmentsBackend.CounselingToken(ctx, code)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CounselingToken error fetching room token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("appointmentUsecase.CounselingToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return token, nil
}

// ProfessionalTimeslots lists the open slots of one professional on one
// date, defaulting to today.
func (uc *appointmentUsecase) ProfessionalTimeslots(ctx context.Context, professionalUserID int, query *requests.TimeslotQuery) (*responses.ProfessionalTimeslots, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ProfessionalTimeslots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, professionalUserID),
	)

	dateKey := query.Date
	if dateKey == "" {
		dateKey = utils.FormatDate(uc.now().In(uc.location))
	}

	professional, err := uc.UsersBackend.GetProfessional(ctx, professionalUserID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.AppointmentsBackend.AvailableTimeslots(ctx, professional.Professional.ID.Int(), dateKey, dateKey)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ProfessionalTimeslots error fetching timeslots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingProfessionalIDKey, professional.Professional.ID.Int()),
			zap.Error(err),
		)
		return nil, err
	}

	slots := []schemas.TimeSlot{}
	if saved, ok := schemas.ForEmail(entries, professional.Email); ok && saved[dateKey] != nil {
		slots = saved[dateKey]
	}

	uc.Log.Info("appointmentUsecase.ProfessionalTimeslots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, dateKey),
		zap.Int(constvars.LoggingCountKey, len(slots)),
	)
	return &responses.ProfessionalTimeslots{Date: dateKey, Slots: slots}, nil
}

func (uc *appointmentUsecase) Book(ctx context.Context, session *models.Session, professionalUserID int, request *requests.BookAppointment) (*schemas.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDateKey, request.AppointmentDate),
	)

	professional, err := uc.UsersBackend.GetProfessional(ctx, professionalUserID)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentsBackend.Create(ctx, &schemas.AppointmentPayload{
		ProfessionalID:  professional.Professional.ID.Int(),
		ScheduleID:      request.ScheduleID,
		AppointmentDate: request.AppointmentDate,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.Shift(uc.InternalConfig.Backend.AppointmentTimeShift())

	uc.invalidate(ctx, constvars.PageCarerHome, constvars.PageCarerAppointments, constvars.PageCarerProfessionals, constvars.PageCounselorHome, constvars.PageCounselorSchedules)
	notifier.PublishAsync(ctx, uc.Notifier, uc.Log, &models.NotificationEvent{
		Event:      models.EventAppointmentBooked,
		ActorID:    session.UserID,
		TargetID:   appointment.ID.Int(),
		OccurredAt: uc.now(),
		Data: map[string]interface{}{
			"professional_user_id": professionalUserID,
			"schedule_id":          request.ScheduleID,
			"appointment_date":     request.AppointmentDate,
		},
	})

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID int) (*schemas.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)

	appointment, err := uc.AppointmentsBackend.Cancel(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error canceling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.Shift(uc.InternalConfig.Backend.AppointmentTimeShift())

	uc.invalidate(ctx, constvars.PageCarerHome, constvars.PageCarerAppointments, constvars.PageCarerProfessionals, constvars.PageCounselorHome, constvars.PageCounselorSchedules)
	notifier.PublishAsync(ctx, uc.Notifier, uc.Log, &models.NotificationEvent{
		Event:      models.EventAppointmentCanceled,
		ActorID:    session.UserID,
		TargetID:   appointmentID,
		OccurredAt: uc.now(),
		Data: map[string]interface{}{
			"professional_user_id": appointment.Professional.User.ID.Int(),
			"status":               string(appointment.Status),
		},
	})

	uc.Log.Info("appointmentUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return appointment, nil
}
