package availability

import (
	"context"
	"errors"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts/mocks"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var manila = time.FixedZone("PHT", 8*60*60)

type fixture struct {
	uc           *availabilityUsecase
	appointments *mocks.AppointmentsBackend
	schedules    *mocks.SchedulesBackend
	locker       *mocks.LockerService
	pageCache    *mocks.PageCache
}

func newFixture() *fixture {
	f := &fixture{
		appointments: new(mocks.AppointmentsBackend),
		schedules:    new(mocks.SchedulesBackend),
		locker:       new(mocks.LockerService),
		pageCache:    new(mocks.PageCache),
	}
	internalConfig := &config.InternalConfig{
		App:          config.App{Timezone: "Asia/Manila"},
		Availability: config.AppAvailability{LockTTLInSeconds: 60},
	}
	f.uc = NewAvailabilityUsecase(f.appointments, f.schedules, f.locker, f.pageCache, internalConfig, zap.NewNop()).(*availabilityUsecase)
	f.uc.location = manila
	f.uc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, manila) }
	return f
}

func slot(t *testing.T, id int, start string) schemas.TimeSlot {
	t.Helper()
	startTime, err := schemas.ParseClock(start)
	require.NoError(t, err)
	return schemas.TimeSlot{
		ScheduleID: schemas.FlexInt(id),
		StartTime:  startTime,
		EndTime:    schemas.NewClockTime(startTime.Add(time.Hour)),
	}
}

func professional() *models.Session {
	return &models.Session{UserID: 4, Email: "ana@giya.ph", ProfessionalID: 12, Role: constvars.RoleProfessional}
}

func at(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, manila)
}

func TestAvailabilityUsecase_Editor(t *testing.T) {
	t.Run("no professional profile is a silent no-op", func(t *testing.T) {
		f := newFixture()
		editor, err := f.uc.Editor(context.Background(), &models.Session{UserID: 1}, &requests.AvailabilityQuery{})
		require.NoError(t, err)
		assert.Nil(t, editor)
		f.appointments.AssertNotCalled(t, "AvailableTimeslots", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("builds the initial selection from every saved date", func(t *testing.T) {
		f := newFixture()
		f.appointments.On("AvailableTimeslots", mock.Anything, 12, "", "").Return([]schemas.AvailableTimeslots{
			{"other@giya.ph": {"2026-03-03": {slot(t, 99, "08:00:00")}}},
			{"ana@giya.ph": {
				"2026-03-03": {slot(t, 1, "09:00:00")},
				"2026-03-04": {slot(t, 2, "13:00:00")},
			}},
		}, nil)

		editor, err := f.uc.Editor(context.Background(), professional(), &requests.AvailabilityQuery{Date: "2026-03-03"})
		require.NoError(t, err)

		assert.Equal(t, "2026-03-03", editor.Date)
		require.Len(t, editor.SavedSlots, 1)
		assert.Equal(t, 1, editor.SavedSlots[0].ScheduleID.Int())
		require.Len(t, editor.Selected, 2)
		assert.True(t, editor.Selected[0].Equal(at(3, 9)))
		assert.True(t, editor.Selected[1].Equal(at(4, 13)))
		require.Len(t, editor.Bands, 3)
		assert.False(t, editor.Bands[0].AllSelected)
	})

	t.Run("a date without saved slots has an empty list", func(t *testing.T) {
		f := newFixture()
		f.appointments.On("AvailableTimeslots", mock.Anything, 12, "", "").Return([]schemas.AvailableTimeslots{}, nil)

		editor, err := f.uc.Editor(context.Background(), professional(), &requests.AvailabilityQuery{})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", editor.Date)
		assert.NotNil(t, editor.SavedSlots)
		assert.Empty(t, editor.SavedSlots)
	})
}

func TestAvailabilityUsecase_ToggleBand(t *testing.T) {
	f := newFixture()

	filled, err := f.uc.ToggleBand(context.Background(), &requests.ToggleBand{
		Date:     "2026-03-03",
		Band:     "evening",
		Selected: []time.Time{at(3, 19)},
	})
	require.NoError(t, err)
	assert.Len(t, filled.Selected, 3)
	assert.True(t, filled.Bands[2].AllSelected)

	cleared, err := f.uc.ToggleBand(context.Background(), &requests.ToggleBand{
		Date:     "2026-03-03",
		Band:     "evening",
		Selected: filled.Selected,
	})
	require.NoError(t, err)
	assert.Empty(t, cleared.Selected)
}

func TestAvailabilityUsecase_Submit(t *testing.T) {
	lockKey := constvars.AvailabilityLockPrefix + "12"
	saved := []schemas.AvailableTimeslots{
		{"ana@giya.ph": {"2026-03-03": {slot(t, 1, "09:00:00"), slot(t, 2, "10:00:00")}}},
	}

	t.Run("creates new slots and deletes unselected ones", func(t *testing.T) {
		f := newFixture()
		f.locker.On("TryLock", mock.Anything, lockKey, time.Minute).Return(true, "lock-1", nil)
		f.locker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
		f.appointments.On("AvailableTimeslots", mock.Anything, 12, "2026-03-03", "2026-03-03").Return(saved, nil)
		f.schedules.On("Create", mock.Anything, mock.MatchedBy(func(p *schemas.SchedulePayload) bool {
			return p.DayOfWeek == 1 && p.StartTime.String() == "11:00:00" && p.EndTime.String() == "12:00:00"
		})).Return(nil).Once()
		f.schedules.On("Delete", mock.Anything, 1).Return(nil).Once()
		f.pageCache.On("Invalidate", mock.Anything, []string{constvars.PageCounselorSchedules, constvars.PageCarerProfessionals}).Return(nil)

		result, err := f.uc.Submit(context.Background(), professional(), &requests.SubmitAvailability{
			Date:          "2026-03-03",
			SelectedSlots: []time.Time{at(3, 10), at(3, 11), at(4, 8)},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Deleted)

		f.schedules.AssertExpectations(t)
		f.locker.AssertExpectations(t)
		f.pageCache.AssertExpectations(t)
	})

	t.Run("weekly repeat only adds, five occurrences per slot", func(t *testing.T) {
		f := newFixture()
		f.locker.On("TryLock", mock.Anything, lockKey, time.Minute).Return(true, "lock-1", nil)
		f.locker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
		f.appointments.On("AvailableTimeslots", mock.Anything, 12, "2026-03-03", "2026-03-03").Return(saved, nil)
		f.schedules.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.pageCache.On("Invalidate", mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.Submit(context.Background(), professional(), &requests.SubmitAvailability{
			Date:          "2026-03-03",
			RepeatType:    "weekly",
			SelectedSlots: []time.Time{at(3, 11)},
		})
		require.NoError(t, err)
		assert.Equal(t, 5, result.Created)
		assert.Equal(t, 0, result.Deleted)
		f.schedules.AssertNumberOfCalls(t, "Create", 5)
		f.schedules.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("a failed call fails the submission without stopping the rest", func(t *testing.T) {
		f := newFixture()
		f.locker.On("TryLock", mock.Anything, lockKey, time.Minute).Return(true, "lock-1", nil)
		f.locker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
		f.appointments.On("AvailableTimeslots", mock.Anything, 12, "2026-03-03", "2026-03-03").Return(saved, nil)

		var deletes int32
		f.schedules.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))
		f.schedules.On("Delete", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { atomic.AddInt32(&deletes, 1) }).
			Return(nil)

		_, err := f.uc.Submit(context.Background(), professional(), &requests.SubmitAvailability{
			Date:          "2026-03-03",
			SelectedSlots: []time.Time{at(3, 11)},
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, int32(2), atomic.LoadInt32(&deletes))
		f.locker.AssertCalled(t, "Unlock", mock.Anything, lockKey, "lock-1")
		f.pageCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("a held lock is a conflict", func(t *testing.T) {
		f := newFixture()
		f.locker.On("TryLock", mock.Anything, lockKey, time.Minute).Return(false, "", nil)

		_, err := f.uc.Submit(context.Background(), professional(), &requests.SubmitAvailability{Date: "2026-03-03"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		f.appointments.AssertNotCalled(t, "AvailableTimeslots", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects past dates and unknown repeat modes", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Submit(context.Background(), professional(), &requests.SubmitAvailability{Date: "2026-03-01"})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)

		_, err = f.uc.Submit(context.Background(), professional(), &requests.SubmitAvailability{Date: "2026-03-02", RepeatType: "monthly"})
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		f.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})
}
