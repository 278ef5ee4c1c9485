package marketplace

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/app/services/shared/notifier"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/forms"
	"giya-service/internal/pkg/schemas"
	"giya-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type marketplaceUsecase struct {
	MarketplaceBackend contracts.MarketplaceBackend
	UsersBackend       contracts.UsersBackend
	ReportRepository   contracts.ReportRepository
	StorageService     contracts.StorageService
	PageCache          contracts.PageCache
	Notifier           contracts.Notifier
	Log                *zap.Logger
	now                func() time.Time
}

func NewMarketplaceUsecase(
	marketplaceBackend contracts.MarketplaceBackend,
	usersBackend contracts.UsersBackend,
	reportRepository contracts.ReportRepository,
	storageService contracts.StorageService,
	pageCache contracts.PageCache,
	notificationQueue contracts.Notifier,
	logger *zap.Logger,
) contracts.MarketplaceUsecase {
	return &marketplaceUsecase{
		MarketplaceBackend: marketplaceBackend,
		UsersBackend:       usersBackend,
		ReportRepository:   reportRepository,
		StorageService:     storageService,
		PageCache:          pageCache,
		Notifier:           notificationQueue,
		Log:                logger,
		now:                time.Now,
	}
}

var marketplacePages = []string{
	constvars.PageFeaturedMarketplace,
	constvars.PageCounselorMarketplace,
	constvars.PageCarerMarketplace,
}

func (uc *marketplaceUsecase) invalidate(ctx context.Context, paths ...string) {
	err := uc.PageCache.Invalidate(ctx, paths...)
	if err != nil {
		uc.Log.Warn("marketplaceUsecase error invalidating page cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Strings(constvars.LoggingPathKey, paths),
			zap.Error(err),
		)
	}
}

func (uc *marketplaceUsecase) ListProducts(ctx context.Context, query *requests.MarketplaceQuery) (*schemas.Paginated[schemas.Product], error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.ListProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Category),
	)

	products, err := uc.MarketplaceBackend.List(ctx, 0, query.Category)
	if err != nil {
		uc.Log.Error("marketplaceUsecase.ListProducts error fetching products",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("marketplaceUsecase.ListProducts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(products.Results)),
	)
	return products, nil
}

// GetProduct loads the product and the viewer's favorites side by side.
func (uc *marketplaceUsecase) GetProduct(ctx context.Context, session *models.Session, productID int) (*responses.ProductDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.GetProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductIDKey, productID),
	)

	var (
		product *schemas.Product
		viewer  *schemas.User
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		product, err = uc.MarketplaceBackend.Get(groupCtx, productID)
		return err
	})
	group.Go(func() error {
		var err error
		viewer, _, err = uc.UsersBackend.Get(groupCtx, session.UserID)
		return err
	})
	err := group.Wait()
	if err != nil {
		uc.Log.Error("marketplaceUsecase.GetProduct error fetching product",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("marketplaceUsecase.GetProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.ProductDetail{
		Product:    *product,
		IsFavorite: viewer.FavoriteItems.Contains(productID),
		IsOwner:    product.OwnedBy(session.CarerID) || product.CreatedByUser(session.UserID),
	}, nil
}

func (uc *marketplaceUsecase) Categories(ctx context.Context) ([]schemas.Option, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.Categories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	categories, err := uc.MarketplaceBackend.Categories(ctx)
	if err != nil {
		uc.Log.Error("marketplaceUsecase.Categories error fetching categories",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("marketplaceUsecase.Categories succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return categories, nil
}

func (uc *marketplaceUsecase) ReportForm(ctx context.Context, productID int) (*responses.ProductReportForm, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.ReportForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductIDKey, productID),
	)

	var (
		product *schemas.Product
		reasons []schemas.Option
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		product, err = uc.MarketplaceBackend.Get(groupCtx, productID)
		return err
	})
	group.Go(func() error {
		var err error
		reasons, err = uc.MarketplaceBackend.ReportReasons(groupCtx)
		return err
	})
	err := group.Wait()
	if err != nil {
		uc.Log.Error("marketplaceUsecase.ReportForm error fetching report form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("marketplaceUsecase.ReportForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.ProductReportForm{Product: *product, Reasons: reasons}, nil
}

// ReportProduct posts one report per reason concurrently. Every posted
// report is also kept in the report log.
func (uc *marketplaceUsecase) ReportProduct(ctx context.Context, session *models.Session, productID int, request *requests.ReportProduct) (*responses.ReportProduct, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.ReportProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductIDKey, productID),
	)

	reasons := utils.SanitizeReportReasons(request.Reasons)
	if len(reasons) == 0 {
		return nil, exceptions.ErrInputValidation(nil).WithFields(map[string]string{"reasons": constvars.ErrClientSelectReason})
	}

	product, err := uc.MarketplaceBackend.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	var group errgroup.Group
	for _, reason := range reasons {
		payload := &schemas.ReportPayload{
			ReportedItem: productID,
			ReportedBy:   session.CarerIDRef(),
			Reason:       reason,
		}
		group.Go(func() error {
			return uc.MarketplaceBackend.Report(ctx, productID, payload)
		})
	}
	err = group.Wait()
	if err != nil {
		uc.Log.Error("marketplaceUsecase.ReportProduct error posting reports",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(reasons)),
			zap.Error(err),
		)
		return nil, err
	}

	reportedAt := uc.now()
	_, err = uc.ReportRepository.Insert(ctx, &models.ProductReport{
		ProductID:       productID,
		ProductName:     product.Name,
		ProductCategory: product.Category,
		Reasons:         reasons,
		ReporterUserID:  session.UserID,
		ReporterRole:    session.Role,
		ReportedAt:      reportedAt,
		TimeModel:       models.TimeModel{CreatedAt: reportedAt, UpdatedAt: reportedAt},
	})
	if err != nil {
		uc.Log.Error("marketplaceUsecase.ReportProduct error recording report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.invalidate(ctx, constvars.PageAdminReports)
	notifier.PublishAsync(ctx, uc.Notifier, uc.Log, &models.NotificationEvent{
		Event:      models.EventProductReported,
		ActorID:    session.UserID,
		TargetID:   productID,
		OccurredAt: reportedAt,
		Data: map[string]interface{}{
			"reasons":          reasons,
			"product_owner_id": product.CreatedBy.User.ID.Int(),
		},
	})

	uc.Log.Info("marketplaceUsecase.ReportProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(reasons)),
	)
	return &responses.ReportProduct{ProductID: productID, Reasons: reasons}, nil
}

func (uc *marketplaceUsecase) ToggleFavorite(ctx context.Context, session *models.Session, productID int) (*responses.ProductDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.ToggleFavorite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductIDKey, productID),
	)

	err := uc.MarketplaceBackend.ToggleFavorite(ctx, productID)
	if err != nil {
		uc.Log.Error("marketplaceUsecase.ToggleFavorite error toggling favorite",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidate(ctx, constvars.PageCarerFavorites, constvars.PageMe)

	detail, err := uc.GetProduct(ctx, session, productID)
	if err != nil {
		return nil, err
	}

	notifier.PublishAsync(ctx, uc.Notifier, uc.Log, &models.NotificationEvent{
		Event:      models.EventProductFavorited,
		ActorID:    session.UserID,
		TargetID:   productID,
		OccurredAt: uc.now(),
		Data: map[string]interface{}{
			"is_favorite":      detail.IsFavorite,
			"product_owner_id": detail.Product.CreatedBy.User.ID.Int(),
		},
	})

	uc.Log.Info("marketplaceUsecase.ToggleFavorite succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("is_favorite", detail.IsFavorite),
	)
	return detail, nil
}

func (uc *marketplaceUsecase) Favorites(ctx context.Context, session *models.Session) ([]schemas.Product, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.Favorites called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	products, err := uc.UsersBackend.Favorites(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("marketplaceUsecase.Favorites error fetching favorites",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("marketplaceUsecase.Favorites succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(products)),
	)
	return products, nil
}

func (uc *marketplaceUsecase) MyProducts(ctx context.Context, session *models.Session) (*schemas.Paginated[schemas.Product], error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.MyProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session.CarerID == 0 {
		return nil, exceptions.ErrMissingCarer(nil)
	}
	products, err := uc.MarketplaceBackend.List(ctx, session.CarerID, "")
	if err != nil {
		uc.Log.Error("marketplaceUsecase.MyProducts error fetching products",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("marketplaceUsecase.MyProducts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(products.Results)),
	)
	return products, nil
}

func (uc *marketplaceUsecase) CreateProduct(ctx context.Context, session *models.Session, request *requests.CreateProduct) (*schemas.Product, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.CreateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session.CarerID == 0 {
		return nil, exceptions.ErrMissingCarer(nil)
	}
	body, contentType, err := forms.NewMultipartBody().
		Field("name", request.Name).
		Field("price", request.Price).
		Field("location", request.Location).
		Field("category", request.Category).
		Field("description", request.Description).
		Field("contact_number", request.ContactNumber).
		OptionalField("facebook_url", request.FacebookURL).
		Field("created_by_id", strconv.Itoa(session.CarerID)).
		Attach(ctx, "image", request.Image, uc.StorageService).
		Finish()
	if err != nil {
		return nil, exceptions.Ensure(err, exceptions.ErrFileOpen)
	}

	product, err := uc.MarketplaceBackend.Create(ctx, body, contentType)
	if err != nil {
		uc.Log.Error("marketplaceUsecase.CreateProduct error creating product",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidate(ctx, append([]string{constvars.PageCarerMyProducts}, marketplacePages...)...)

	uc.Log.Info("marketplaceUsecase.CreateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductIDKey, product.ID.Int()),
	)
	return product, nil
}

// UpdateProduct is limited to the product's owner.
func (uc *marketplaceUsecase) UpdateProduct(ctx context.Context, session *models.Session, productID int, request *requests.UpdateProduct) (*schemas.Product, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("marketplaceUsecase.UpdateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductIDKey, productID),
	)

	current, err := uc.MarketplaceBackend.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !current.OwnedBy(session.CarerID) && !current.CreatedByUser(session.UserID) {
		return nil, exceptions.ErrNotProductOwner(nil, productID)
	}

	body, contentType, err := forms.NewMultipartBody().
		OptionalField("name", request.Name).
		OptionalField("price", request.Price).
		OptionalField("location", request.Location).
		OptionalField("category", request.Category).
		OptionalField("description", request.Description).
		OptionalField("contact_number", request.ContactNumber).
		OptionalField("facebook_url", request.FacebookURL).
		Attach(ctx, "image", request.Image, uc.StorageService).
		Finish()
	if err != nil {
		return nil, exceptions.Ensure(err, exceptions.ErrFileOpen)
	}

	product, err := uc.MarketplaceBackend.Update(ctx, productID, body, contentType)
	if err != nil {
		uc.Log.Error("marketplaceUsecase.UpdateProduct error updating product",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidate(ctx, append([]string{constvars.PageCarerMyProducts, constvars.PageCarerFavorites}, marketplacePages...)...)

	uc.Log.Info("marketplaceUsecase.UpdateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return product, nil
}
