package availability

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/availability"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type availabilityUsecase struct {
	AppointmentsBackend contracts.AppointmentsBackend
	SchedulesBackend    contracts.SchedulesBackend
	LockerService       contracts.LockerService
	PageCache           contracts.PageCache
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	location            *time.Location
	now                 func() time.Time
}

func NewAvailabilityUsecase(
	appointmentsBackend contracts.AppointmentsBackend,
	schedulesBackend contracts.SchedulesBackend,
	lockerService contracts.LockerService,
	pageCache contracts.PageCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		AppointmentsBackend: appointmentsBackend,
		SchedulesBackend:    schedulesBackend,
		LockerService:       lockerService,
		PageCache:           pageCache,
		InternalConfig:      internalConfig,
		Log:                 logger,
		location:            utils.LoadLocation(internalConfig.App.Timezone),
		now:                 time.Now,
	}
}

func (uc *availabilityUsecase) targetDate(value string) (time.Time, error) {
	if value == "" {
		return utils.StartOfDay(uc.now().In(uc.location)), nil
	}
	date, err := utils.ParseDate(value, uc.location)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err, value)
	}
	return date, nil
}

func (uc *availabilityUsecase) savedSlots(ctx context.Context, session *models.Session, startDate, endDate string) (schemas.ProfessionalTimeslots, error) {
	entries, err := uc.AppointmentsBackend.AvailableTimeslots(ctx, session.ProfessionalID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	saved, _ := schemas.ForEmail(entries, session.Email)
	return saved, nil
}

func (uc *availabilityUsecase) Editor(ctx context.Context, session *models.Session, query *requests.AvailabilityQuery) (*responses.AvailabilityEditor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.Editor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session.ProfessionalID == 0 {
		uc.Log.Info("availabilityUsecase.Editor skipped, session has no professional profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
		)
		return nil, nil
	}

	date, err := uc.targetDate(query.Date)
	if err != nil {
		return nil, err
	}

	saved, err := uc.savedSlots(ctx, session, "", "")
	if err != nil {
		uc.Log.Error("availabilityUsecase.Editor error loading saved timeslots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingProfessionalIDKey, session.ProfessionalID),
			zap.Error(err),
		)
		return nil, err
	}

	dateKey := utils.FormatDate(date)
	savedForDate := saved[dateKey]
	if savedForDate == nil {
		savedForDate = []schemas.TimeSlot{}
	}
	selection := availability.SelectionFromSaved(saved, uc.location)

	uc.Log.Info("availabilityUsecase.Editor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, dateKey),
	)
	return &responses.AvailabilityEditor{
		Date:       dateKey,
		SavedSlots: savedForDate,
		Selected:   selection,
		Bands:      availability.BandStates(selection, date),
	}, nil
}

func (uc *availabilityUsecase) ToggleBand(ctx context.Context, request *requests.ToggleBand) (*responses.ToggleBand, error) {
	date, err := uc.targetDate(request.Date)
	if err != nil {
		return nil, err
	}
	band, err := availability.BandByName(request.Band)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	selected := make([]time.Time, 0, len(request.Selected))
	for _, s := range request.Selected {
		selected = append(selected, s.In(uc.location))
	}
	selected = availability.ToggleBand(selected, date, band)

	return &responses.ToggleBand{
		Selected: selected,
		Bands:    availability.BandStates(selected, date),
	}, nil
}

// Submit reconciles the selection for one date with the backend. All calls
// run concurrently and are awaited together; a failed call does not undo
// the others.
func (uc *availabilityUsecase) Submit(ctx context.Context, session *models.Session, request *requests.SubmitAvailability) (*responses.SubmitAvailability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingRepeatTypeKey, request.RepeatType),
	)

	if session.ProfessionalID == 0 {
		return nil, exceptions.ErrMissingProfessional(nil)
	}

	date, err := uc.targetDate(request.Date)
	if err != nil {
		return nil, err
	}
	err = availability.ValidateTargetDate(date, uc.now(), uc.location)
	if err != nil {
		return nil, exceptions.ErrPastTargetDate(err, request.Date)
	}
	mode, err := availability.ParseRepeatMode(request.RepeatType)
	if err != nil {
		return nil, exceptions.ErrRepeatMode(err, request.RepeatType)
	}

	lockKey := constvars.AvailabilityLockPrefix + strconv.Itoa(session.ProfessionalID)
	locked, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.InternalConfig.Availability.LockTTL())
	if err != nil {
		return nil, err
	}
	if !locked {
		uc.Log.Warn("availabilityUsecase.Submit rejected, submission already running",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, exceptions.ErrAvailabilityLocked(nil, lockKey)
	}
	defer func() {
		err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
		if err != nil {
			uc.Log.Warn("availabilityUsecase.Submit error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	dateKey := utils.FormatDate(date)
	saved, err := uc.savedSlots(ctx, session, dateKey, dateKey)
	if err != nil {
		uc.Log.Error("availabilityUsecase.Submit error loading saved timeslots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingProfessionalIDKey, session.ProfessionalID),
			zap.Error(err),
		)
		return nil, err
	}

	plan := availability.Diff(date, request.SelectedSlots, saved[dateKey])
	creates := availability.BuildCreates(plan, date, mode)
	deletes := availability.BuildDeletes(plan, mode)

	var group errgroup.Group
	for i := range creates {
		payload := &creates[i]
		group.Go(func() error {
			return uc.SchedulesBackend.Create(ctx, payload)
		})
	}
	for _, scheduleID := range deletes {
		group.Go(func() error {
			return uc.SchedulesBackend.Delete(ctx, scheduleID)
		})
	}
	err = group.Wait()
	if err != nil {
		uc.Log.Error("availabilityUsecase.Submit error synchronizing schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCreatedCountKey, len(creates)),
			zap.Int(constvars.LoggingDeletedCountKey, len(deletes)),
			zap.Error(err),
		)
		return nil, exceptions.ErrAvailabilitySubmit(err, len(creates)+len(deletes))
	}

	err = uc.PageCache.Invalidate(ctx, constvars.PageCounselorSchedules, constvars.PageCarerProfessionals)
	if err != nil {
		uc.Log.Warn("availabilityUsecase.Submit error invalidating page cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("availabilityUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCreatedCountKey, len(creates)),
		zap.Int(constvars.LoggingDeletedCountKey, len(deletes)),
	)
	return &responses.SubmitAvailability{
		Date:       dateKey,
		RepeatType: string(mode),
		Created:    len(creates),
		Deleted:    len(deletes),
	}, nil
}
