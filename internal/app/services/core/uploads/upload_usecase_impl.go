package uploads

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/app/services/shared/ratelimiter"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/forms"
	"giya-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type uploadUsecase struct {
	StorageService contracts.StorageService
	Limiter        *ratelimiter.ResourceLimiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewUploadUsecase(
	storageService contracts.StorageService,
	limiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UploadUsecase {
	return &uploadUsecase{
		StorageService: storageService,
		Limiter:        limiter,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *uploadUsecase) sniff(request *requests.StageUpload) (string, error) {
	file, err := request.File.Header.Open()
	if err != nil {
		return "", exceptions.ErrFileOpen(err)
	}
	defer file.Close()

	contentType, err := forms.DetectContentType(file)
	if err != nil {
		return "", exceptions.ErrFileOpen(err)
	}
	err = forms.CheckContentType(contentType, "media")
	if err != nil {
		return "", exceptions.ErrFileType(err, contentType, forms.AcceptedTypes["media"]).
			WithFields(map[string]string{"file": constvars.ErrClientInvalidFileType})
	}
	return contentType, nil
}

// Stage stores a file ahead of the form that references it. Each user may
// stage a limited number of files per window.
func (uc *uploadUsecase) Stage(ctx context.Context, session *models.Session, request *requests.StageUpload) (*responses.StagedUpload, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("uploadUsecase.Stage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)

	if request.File.Header == nil {
		return nil, exceptions.ErrInputValidation(nil).WithFields(map[string]string{"file": constvars.ErrClientChooseFile})
	}

	limit, err := uc.Limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      strconv.Itoa(session.UserID),
		LimiterGroupName:  constvars.UploadLimiterGroup,
		WindowDurationSec: uc.InternalConfig.Minio.UploadWindowInSeconds,
		MaxQuota:          uc.InternalConfig.Minio.UploadQuota,
		NowUTC:            uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Error("uploadUsecase.Stage error applying upload limit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrServerProcess(err)
	}
	if !limit.Allowed {
		uc.Log.Warn("uploadUsecase.Stage upload quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
			zap.Int("retry_after_secs", limit.RetryAfterSecs),
		)
		return nil, exceptions.ErrTooManyRequests(nil)
	}

	contentType, err := uc.sniff(request)
	if err != nil {
		return nil, err
	}

	staged, err := uc.StorageService.Stage(ctx, request.File.Header, contentType)
	if err != nil {
		uc.Log.Error("uploadUsecase.Stage error staging file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	url, err := uc.StorageService.PresignedURL(ctx, staged.ObjectName)
	if err != nil {
		uc.Log.Error("uploadUsecase.Stage error presigning staged file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, staged.ObjectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("uploadUsecase.Stage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUploadIDKey, staged.ID),
	)
	return &responses.StagedUpload{
		ID:          staged.ID,
		URL:         url,
		ContentType: staged.ContentType,
		File:        staged.OriginalName,
	}, nil
}

func (uc *uploadUsecase) PruneStaged(ctx context.Context) (int, error) {
	cutoff := uc.now().Add(-uc.InternalConfig.Minio.StagedUploadTTL())
	removed, err := uc.StorageService.PruneStaged(ctx, cutoff)
	if err != nil {
		uc.Log.Error("uploadUsecase.PruneStaged error pruning staged uploads",
			zap.Int(constvars.LoggingCountKey, removed),
			zap.Error(err),
		)
		return removed, err
	}

	uc.Log.Info("uploadUsecase.PruneStaged succeeded",
		zap.Int(constvars.LoggingCountKey, removed),
	)
	return removed, nil
}
