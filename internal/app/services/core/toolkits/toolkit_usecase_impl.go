package toolkits

import (
	"context"
	"fmt"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/forms"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type toolkitUsecase struct {
	ToolkitsBackend contracts.ToolkitsBackend
	StorageService  contracts.StorageService
	PageCache       contracts.PageCache
	Log             *zap.Logger
}

func NewToolkitUsecase(
	toolkitsBackend contracts.ToolkitsBackend,
	storageService contracts.StorageService,
	pageCache contracts.PageCache,
	logger *zap.Logger,
) contracts.ToolkitUsecase {
	return &toolkitUsecase{
		ToolkitsBackend: toolkitsBackend,
		StorageService:  storageService,
		PageCache:       pageCache,
		Log:             logger,
	}
}

func videoField(index int, name string) string {
	return fmt.Sprintf("videos[%d]%s", index, name)
}

func (uc *toolkitUsecase) invalidate(ctx context.Context) {
	paths := []string{constvars.PageAdminToolkits, constvars.PageCarerToolkits, constvars.PageCarerProfessionals}
	err := uc.PageCache.Invalidate(ctx, paths...)
	if err != nil {
		uc.Log.Warn("toolkitUsecase error invalidating page cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Strings(constvars.LoggingPathKey, paths),
			zap.Error(err),
		)
	}
}

func (uc *toolkitUsecase) ListToolkits(ctx context.Context) (*schemas.Paginated[schemas.Toolkit], error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("toolkitUsecase.ListToolkits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	toolkits, err := uc.ToolkitsBackend.List(ctx)
	if err != nil {
		uc.Log.Error("toolkitUsecase.ListToolkits error fetching toolkits",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("toolkitUsecase.ListToolkits succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(toolkits.Results)),
	)
	return toolkits, nil
}

func (uc *toolkitUsecase) GetToolkit(ctx context.Context, toolkitID int) (*schemas.Toolkit, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("toolkitUsecase.GetToolkit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingToolkitIDKey, toolkitID),
	)

	toolkit, err := uc.ToolkitsBackend.Get(ctx, toolkitID)
	if err != nil {
		uc.Log.Error("toolkitUsecase.GetToolkit error fetching toolkit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("toolkitUsecase.GetToolkit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return toolkit, nil
}

func (uc *toolkitUsecase) CreateToolkit(ctx context.Context, request *requests.CreateToolkit) (*schemas.Toolkit, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("toolkitUsecase.CreateToolkit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProfessionalIDKey, request.ProfessionalID),
		zap.Int(constvars.LoggingCountKey, len(request.Videos)),
	)

	body := forms.NewMultipartBody().
		Field("title", request.Title).
		Field("description", request.Description).
		Field("professional_id", strconv.Itoa(request.ProfessionalID)).
		Attach(ctx, "image_thumbnail", request.ImageThumbnail, uc.StorageService)
	for i, video := range request.Videos {
		body.Field(videoField(i, "name"), video.Name).
			Attach(ctx, videoField(i, "video"), video.Video, uc.StorageService)
	}
	payload, contentType, err := body.Finish()
	if err != nil {
		return nil, exceptions.Ensure(err, exceptions.ErrFileOpen)
	}

	toolkit, err := uc.ToolkitsBackend.Create(ctx, payload, contentType)
	if err != nil {
		uc.Log.Error("toolkitUsecase.CreateToolkit error creating toolkit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidate(ctx)

	uc.Log.Info("toolkitUsecase.CreateToolkit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingToolkitIDKey, toolkit.ID.Int()),
	)
	return toolkit, nil
}

// UpdateToolkit sends new videos first. Videos marked for deletion take the
// indices after them so the two groups never share a prefix.
func (uc *toolkitUsecase) UpdateToolkit(ctx context.Context, toolkitID int, request *requests.UpdateToolkit) (*schemas.Toolkit, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("toolkitUsecase.UpdateToolkit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingToolkitIDKey, toolkitID),
		zap.Int(constvars.LoggingCreatedCountKey, len(request.Videos)),
		zap.Int(constvars.LoggingDeletedCountKey, len(request.DeleteVideoIDs)),
	)

	body := forms.NewMultipartBody().
		OptionalField("title", request.Title).
		OptionalField("description", request.Description)
	if request.ProfessionalID > 0 {
		body.Field("professional_id", strconv.Itoa(request.ProfessionalID))
	}
	body.Attach(ctx, "image_thumbnail", request.ImageThumbnail, uc.StorageService)
	for i, video := range request.Videos {
		body.Field(videoField(i, "name"), video.Name).
			Attach(ctx, videoField(i, "file"), video.Video, uc.StorageService)
	}
	offset := len(request.Videos)
	for i, videoID := range request.DeleteVideoIDs {
		body.Field(videoField(offset+i, "id"), strconv.Itoa(videoID)).
			Field(videoField(offset+i, "should_delete"), "true")
	}
	payload, contentType, err := body.Finish()
	if err != nil {
		return nil, exceptions.Ensure(err, exceptions.ErrFileOpen)
	}

	toolkit, err := uc.ToolkitsBackend.Update(ctx, toolkitID, payload, contentType)
	if err != nil {
		uc.Log.Error("toolkitUsecase.UpdateToolkit error updating toolkit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidate(ctx)

	uc.Log.Info("toolkitUsecase.UpdateToolkit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return toolkit, nil
}
