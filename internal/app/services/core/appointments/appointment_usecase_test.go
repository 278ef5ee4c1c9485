package appointments

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts/mocks"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	uc           *appointmentUsecase
	appointments *mocks.AppointmentsBackend
	users        *mocks.UsersBackend
	pageCache    *mocks.PageCache
	notifier     *mocks.Notifier
}

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		appointments: new(mocks.AppointmentsBackend),
		users:        new(mocks.UsersBackend),
		pageCache:    new(mocks.PageCache),
		notifier:     mocks.NewNotifier(),
	}
	internalConfig := &config.InternalConfig{
		App:     config.App{Timezone: "UTC"},
		Backend: config.AppBackend{AppointmentTimeShiftHours: -8},
	}
	f.uc = NewAppointmentUsecase(f.appointments, f.users, f.pageCache, f.notifier, internalConfig, zap.NewNop()).(*appointmentUsecase)
	f.uc.now = func() time.Time { return now }
	return f
}

func appointment(id int, at time.Time, status schemas.AppointmentStatus) schemas.Appointment {
	return schemas.Appointment{ID: schemas.FlexInt(id), AppointmentTime: at, Status: status}
}

func professional() *schemas.Professional {
	return &schemas.Professional{
		User:         schemas.User{ID: 4, Email: "ana@giya.ph"},
		Professional: schemas.ProfessionalProfile{ID: 12, Profession: schemas.ProfessionCounselor},
	}
}

func TestAppointmentUsecase_ListForSession(t *testing.T) {
	t.Run("groups shifted appointments of a professional", func(t *testing.T) {
		f := newFixture()
		f.appointments.On("List", mock.Anything, 0, 12).Return(&schemas.Paginated[schemas.Appointment]{
			Results: []schemas.Appointment{
				appointment(1, now.Add(30*time.Hour), schemas.AppointmentStatusConfirmed),
				appointment(2, now.Add(10*time.Hour), schemas.AppointmentStatusPending),
				appointment(3, now.Add(4*time.Hour), schemas.AppointmentStatusPending),
				appointment(4, now.Add(48*time.Hour), schemas.AppointmentStatusCanceled),
			},
		}, nil)

		session := &models.Session{Role: constvars.RoleProfessional, ProfessionalID: 12}
		groups, err := f.uc.ListForSession(context.Background(), session)
		require.NoError(t, err)

		require.Len(t, groups.Upcoming, 2)
		assert.Equal(t, 2, groups.Upcoming[0].ID.Int())
		assert.Equal(t, 1, groups.Upcoming[1].ID.Int())
		assert.Equal(t, now.Add(2*time.Hour), groups.Upcoming[0].AppointmentTime)
		require.Len(t, groups.Past, 2)
		assert.Equal(t, 4, groups.Past[0].ID.Int())
	})

	t.Run("a carer without carer profile is refused", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.ListForSession(context.Background(), &models.Session{Role: constvars.RoleCarer})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_ProfessionalTimeslots(t *testing.T) {
	f := newFixture()
	start, err := schemas.ParseClock("09:00:00")
	require.NoError(t, err)
	f.users.On("GetProfessional", mock.Anything, 4).Return(professional(), nil)
	f.appointments.On("AvailableTimeslots", mock.Anything, 12, "2026-03-05", "2026-03-05").Return([]schemas.AvailableTimeslots{
		{"ana@giya.ph": {"2026-03-05": {{ScheduleID: 31, StartTime: start, EndTime: start}}}},
	}, nil)

	result, err := f.uc.ProfessionalTimeslots(context.Background(), 4, &requests.TimeslotQuery{Date: "2026-03-05"})
	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	assert.Equal(t, 31, result.Slots[0].ScheduleID.Int())

	f.appointments.On("AvailableTimeslots", mock.Anything, 12, "2026-03-02", "2026-03-02").Return([]schemas.AvailableTimeslots{}, nil)
	empty, err := f.uc.ProfessionalTimeslots(context.Background(), 4, &requests.TimeslotQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", empty.Date)
	assert.NotNil(t, empty.Slots)
}

var bookingPages = []string{
	constvars.PageCarerHome,
	constvars.PageCarerAppointments,
	constvars.PageCarerProfessionals,
	constvars.PageCounselorHome,
	constvars.PageCounselorSchedules,
}

func TestAppointmentUsecase_Book(t *testing.T) {
	f := newFixture()
	f.users.On("GetProfessional", mock.Anything, 4).Return(professional(), nil)
	booked := appointment(77, now.Add(24*time.Hour), schemas.AppointmentStatusPending)
	f.appointments.On("Create", mock.Anything, &schemas.AppointmentPayload{
		ProfessionalID:  12,
		ScheduleID:      31,
		AppointmentDate: "2026-03-05",
	}).Return(&booked, nil)
	f.pageCache.On("Invalidate", mock.Anything, bookingPages).Return(nil)
	f.notifier.On("Publish", mock.Anything, mock.Anything).Return(nil)

	session := &models.Session{UserID: 5, Role: constvars.RoleCarer, CarerID: 8}
	result, err := f.uc.Book(context.Background(), session, 4, &requests.BookAppointment{ScheduleID: 31, AppointmentDate: "2026-03-05"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(16*time.Hour), result.AppointmentTime)

	select {
	case event := <-f.notifier.Events:
		assert.Equal(t, models.EventAppointmentBooked, event.Event)
		assert.Equal(t, 5, event.ActorID)
		assert.Equal(t, 77, event.TargetID)
	case <-time.After(time.Second):
		t.Fatal("booking event was not published")
	}
	f.pageCache.AssertExpectations(t)
}

func TestAppointmentUsecase_Cancel(t *testing.T) {
	f := newFixture()
	canceled := appointment(77, now, schemas.AppointmentStatusCanceled)
	f.appointments.On("Cancel", mock.Anything, 77).Return(&canceled, nil)
	f.pageCache.On("Invalidate", mock.Anything, bookingPages).Return(nil)
	f.notifier.On("Publish", mock.Anything, mock.Anything).Return(nil)

	result, err := f.uc.Cancel(context.Background(), &models.Session{UserID: 5}, 77)
	require.NoError(t, err)
	assert.Equal(t, schemas.AppointmentStatusCanceled, result.Status)

	select {
	case event := <-f.notifier.Events:
		assert.Equal(t, models.EventAppointmentCanceled, event.Event)
	case <-time.After(time.Second):
		t.Fatal("cancel event was not published")
	}
	f.pageCache.AssertExpectations(t)
}
