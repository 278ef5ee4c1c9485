package contracts

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"giya-service/internal/pkg/schemas"
)

type MarketplaceUsecase interface {
	ListProducts(ctx context.Context, query *requests.MarketplaceQuery) (*schemas.Paginated[schemas.Product], error)
	GetProduct(ctx context.Context, session *models.Session, productID int) (*responses.ProductDetail, error)
	Categories(ctx context.Context) ([]schemas.Option, error)
	ReportForm(ctx context.Context, productID int) (*responses.ProductReportForm, error)
	ReportProduct(ctx context.Context, session *models.Session, productID int, request *requests.ReportProduct) (*responses.ReportProduct, error)
	ToggleFavorite(ctx context.Context, session *models.Session, productID int) (*responses.ProductDetail, error)
	Favorites(ctx context.Context, session *models.Session) ([]schemas.Product, error)
	MyProducts(ctx context.Context, session *models.Session) (*schemas.Paginated[schemas.Product], error)
	CreateProduct(ctx context.Context, session *models.Session, request *requests.CreateProduct) (*schemas.Product, error)
	UpdateProduct(ctx context.Context, session *models.Session, productID int, request *requests.UpdateProduct) (*schemas.Product, error)
}
