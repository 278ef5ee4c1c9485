package controllers

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/forms"
	"giya-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type MarketplaceController struct {
	Log                *zap.Logger
	MarketplaceUsecase contracts.MarketplaceUsecase
	Binder             *forms.Binder
	InternalConfig     *config.InternalConfig
}

func NewMarketplaceController(logger *zap.Logger, marketplaceUsecase contracts.MarketplaceUsecase, binder *forms.Binder, internalConfig *config.InternalConfig) *MarketplaceController {
	return &MarketplaceController{
		Log:                logger,
		MarketplaceUsecase: marketplaceUsecase,
		Binder:             binder,
		InternalConfig:     internalConfig,
	}
}

// ListProducts serves both the public featured listing and the role
// marketplace pages.
func (ctrl *MarketplaceController) ListProducts(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.ListProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	query := new(requests.MarketplaceQuery)
	err := ctrl.Binder.BindQuery(r, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	products, err := ctrl.MarketplaceUsecase.ListProducts(ctx, query)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MarketplaceController.ListProducts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(products.Results)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductsSuccessMessage, products)
}

func (ctrl *MarketplaceController) GetProduct(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.GetProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	productID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	detail, err := ctrl.MarketplaceUsecase.GetProduct(ctx, session, productID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductSuccessMessage, detail)
}

func (ctrl *MarketplaceController) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	categories, err := ctrl.MarketplaceUsecase.Categories(ctx)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCategoriesSuccessMessage, categories)
}

func (ctrl *MarketplaceController) ReportForm(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.ReportForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	productID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	form, err := ctrl.MarketplaceUsecase.ReportForm(ctx, productID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportReasonsSuccessMessage, form)
}

func (ctrl *MarketplaceController) ReportProduct(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.ReportProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	productID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ReportProduct)
	err = ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.MarketplaceUsecase.ReportProduct(ctx, session, productID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "product_reported", requestID,
		zap.Int(constvars.LoggingProductIDKey, productID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReportProductSuccessMessage, result)
}

func (ctrl *MarketplaceController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.ToggleFavorite called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	productID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	detail, err := ctrl.MarketplaceUsecase.ToggleFavorite(ctx, session, productID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleFavoriteSuccessMessage, detail)
}

func (ctrl *MarketplaceController) Favorites(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	products, err := ctrl.MarketplaceUsecase.Favorites(ctx, session)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFavoritesSuccessMessage, products)
}

func (ctrl *MarketplaceController) MyProducts(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.MyProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	products, err := ctrl.MarketplaceUsecase.MyProducts(ctx, session)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProductsSuccessMessage, products)
}

func (ctrl *MarketplaceController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.CreateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateProduct)
	err = ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	product, err := ctrl.MarketplaceUsecase.CreateProduct(ctx, session, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MarketplaceController.CreateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProductSuccessMessage, product)
}

func (ctrl *MarketplaceController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MarketplaceController.UpdateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := sessionFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	productID, err := idParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateProduct)
	err = ctrl.Binder.Bind(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	product, err := ctrl.MarketplaceUsecase.UpdateProduct(ctx, session, productID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MarketplaceController.UpdateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductIDKey, productID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProductSuccessMessage, product)
}
