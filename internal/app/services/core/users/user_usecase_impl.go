package users

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/forms"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type userUsecase struct {
	UsersBackend    contracts.UsersBackend
	ToolkitsBackend contracts.ToolkitsBackend
	StorageService  contracts.StorageService
	PageCache       contracts.PageCache
	Log             *zap.Logger
}

func NewUserUsecase(
	usersBackend contracts.UsersBackend,
	toolkitsBackend contracts.ToolkitsBackend,
	storageService contracts.StorageService,
	pageCache contracts.PageCache,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UsersBackend:    usersBackend,
		ToolkitsBackend: toolkitsBackend,
		StorageService:  storageService,
		PageCache:       pageCache,
		Log:             logger,
	}
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

func (uc *userUsecase) invalidate(ctx context.Context, paths ...string) {
	err := uc.PageCache.Invalidate(ctx, paths...)
	if err != nil {
		uc.Log.Warn("userUsecase error invalidating page cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Strings(constvars.LoggingPathKey, paths),
			zap.Error(err),
		)
	}
}

func (uc *userUsecase) GetCurrentUser(ctx context.Context, session *models.Session) (*schemas.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetCurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)

	user, _, err := uc.UsersBackend.Get(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.GetCurrentUser error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.GetCurrentUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return user, nil
}

func (uc *userUsecase) ListProfessionals(ctx context.Context, page int) (*schemas.Paginated[schemas.Professional], error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.ListProfessionals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	professionals, err := uc.UsersBackend.ListProfessionals(ctx, page)
	if err != nil {
		uc.Log.Error("userUsecase.ListProfessionals error fetching professionals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.ListProfessionals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(professionals.Results)),
	)
	return professionals, nil
}

// GetProfessional loads the professional together with the toolkits they
// authored.
func (uc *userUsecase) GetProfessional(ctx context.Context, userID int) (*responses.ProfessionalDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetProfessional called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, userID),
	)

	var (
		professional *schemas.Professional
		toolkits     *schemas.Paginated[schemas.Toolkit]
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		professional, err = uc.UsersBackend.GetProfessional(groupCtx, userID)
		return err
	})
	group.Go(func() error {
		var err error
		toolkits, err = uc.ToolkitsBackend.List(groupCtx)
		return err
	})
	err := group.Wait()
	if err != nil {
		uc.Log.Error("userUsecase.GetProfessional error fetching professional",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	authored := make([]schemas.Toolkit, 0)
	for _, toolkit := range toolkits.Results {
		if toolkit.Professional.ID == professional.Professional.ID {
			authored = append(authored, toolkit)
		}
	}

	uc.Log.Info("userUsecase.GetProfessional succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.ProfessionalDetail{
		Professional: *professional,
		Toolkits:     authored,
	}, nil
}

func (uc *userUsecase) CreateProfessional(ctx context.Context, request *requests.CreateProfessional) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.CreateProfessional called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, contentType, err := forms.NewMultipartBody().
		Field("email", request.Email).
		Field("first_name", request.FirstName).
		Field("last_name", request.LastName).
		Field("password", request.Password).
		Field("profession", request.Profession).
		Field("rate", formatRate(request.Rate)).
		OptionalField("description", request.Description).
		OptionalField("specialization", request.Specialization).
		Attach(ctx, "profile_photo", request.ProfilePhoto, uc.StorageService).
		Finish()
	if err != nil {
		return exceptions.Ensure(err, exceptions.ErrFileOpen)
	}

	err = uc.UsersBackend.RegisterProfessional(ctx, body, contentType)
	if err != nil {
		uc.Log.Error("userUsecase.CreateProfessional error registering professional",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidate(ctx, constvars.PageAdminUsers, constvars.PageCarerProfessionals)

	uc.Log.Info("userUsecase.CreateProfessional succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// AdminUpdateUser sends only the fields that were filled in.
func (uc *userUsecase) AdminUpdateUser(ctx context.Context, userID int, request *requests.AdminUpdateUser) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.AdminUpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, userID),
	)

	rate := ""
	if request.Rate > 0 {
		rate = formatRate(request.Rate)
	}
	body, contentType, err := forms.NewMultipartBody().
		OptionalField("email", request.Email).
		OptionalField("first_name", request.FirstName).
		OptionalField("last_name", request.LastName).
		OptionalField("profession", request.Profession).
		OptionalField("description", request.Description).
		OptionalField("rate", rate).
		OptionalField("specialization", request.Specialization).
		Attach(ctx, "profile_photo", request.ProfilePhoto, uc.StorageService).
		Finish()
	if err != nil {
		return exceptions.Ensure(err, exceptions.ErrFileOpen)
	}

	err = uc.UsersBackend.AdminUpdate(ctx, userID, body, contentType)
	if err != nil {
		uc.Log.Error("userUsecase.AdminUpdateUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidate(ctx, constvars.PageAdminUsers, constvars.PageCarerProfessionals)

	uc.Log.Info("userUsecase.AdminUpdateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *userUsecase) UpdateSettings(ctx context.Context, session *models.Session, request *requests.UpdateSettings) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)

	body, contentType, err := forms.NewMultipartBody().
		Field("email", request.Email).
		Field("first_name", request.FirstName).
		Field("last_name", request.LastName).
		Field("is_staff", strconv.FormatBool(session.IsStaff)).
		OptionalField("description", request.Description).
		OptionalField("password", request.Password).
		Attach(ctx, "profile_photo", request.ProfilePhoto, uc.StorageService).
		Finish()
	if err != nil {
		return exceptions.Ensure(err, exceptions.ErrFileOpen)
	}

	err = uc.UsersBackend.UpdateSettings(ctx, session.UserID, body, contentType)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateSettings error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidate(ctx, constvars.PageMe, constvars.PageAdminProfile, constvars.PageCounselorProfile)

	uc.Log.Info("userUsecase.UpdateSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *userUsecase) UpdatePricing(ctx context.Context, session *models.Session, request *requests.UpdatePricing) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdatePricing called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.UsersBackend.UpdatePricing(ctx, session.UserID, &schemas.PricingPayload{Price: request.Price})
	if err != nil {
		uc.Log.Error("userUsecase.UpdatePricing error updating pricing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidate(ctx, constvars.PageCounselorProfile, constvars.PageCarerProfessionals)

	uc.Log.Info("userUsecase.UpdatePricing succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
