package backend

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/schemas"
	"net/url"
	"strconv"
)

type marketplaceBackend struct {
	client *Client
}

func NewMarketplaceBackend(client *Client) contracts.MarketplaceBackend {
	return &marketplaceBackend{client: client}
}

func (b *marketplaceBackend) List(ctx context.Context, carerID int, category string) (*schemas.Paginated[schemas.Product], error) {
	query := url.Values{}
	if carerID != 0 {
		query.Set(constvars.URLQueryParamCarerID, strconv.Itoa(carerID))
	}
	if category != "" {
		query.Set(constvars.URLQueryParamCategory, category)
	}
	raw, err := b.client.Do(ctx, constvars.MethodGet, "/marketplace", query, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Paginated[schemas.Product]](raw, constvars.ResourceMarketplace)
}

func (b *marketplaceBackend) Get(ctx context.Context, productID int) (*schemas.Product, error) {
	raw, err := b.client.Do(ctx, constvars.MethodGet, idPath(constvars.ResourceMarketplace, productID), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Product](raw, constvars.ResourceMarketplace)
}

func (b *marketplaceBackend) Create(ctx context.Context, body []byte, contentType string) (*schemas.Product, error) {
	raw, err := b.client.Do(ctx, constvars.MethodPost, "/marketplace", nil, body, contentType)
	if err != nil {
		return nil, err
	}
	return parse[schemas.Product](raw, constvars.ResourceMarketplace)
}

func (b *marketplaceBackend) Update(ctx context.Context, productID int, body []byte, contentType string) (*schemas.Product, error) {
	raw, err := b.client.Do(ctx, constvars.MethodPatch, idPath(constvars.ResourceMarketplace, productID), nil, body, contentType)
	if err != nil {
		return nil, err
	}
	return parse[schemas.Product](raw, constvars.ResourceMarketplace)
}

func (b *marketplaceBackend) Categories(ctx context.Context) ([]schemas.Option, error) {
	return b.options(ctx, "/marketplace/categories")
}

func (b *marketplaceBackend) ReportReasons(ctx context.Context) ([]schemas.Option, error) {
	return b.options(ctx, "/marketplace/report-reasons")
}

func (b *marketplaceBackend) options(ctx context.Context, path string) ([]schemas.Option, error) {
	raw, err := b.client.Do(ctx, constvars.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	options, err := parse[[]schemas.Option](raw, constvars.ResourceMarketplace)
	if err != nil {
		return nil, err
	}
	return *options, nil
}

func (b *marketplaceBackend) Report(ctx context.Context, productID int, payload *schemas.ReportPayload) error {
	_, err := b.client.sendJSON(ctx, constvars.MethodPost, idPath(constvars.ResourceMarketplace, productID, "report_item"), payload)
	return err
}

func (b *marketplaceBackend) ToggleFavorite(ctx context.Context, productID int) error {
	_, err := b.client.Do(ctx, constvars.MethodPost, idPath(constvars.ResourceMarketplace, productID, "toggle-favorite"), nil, nil, "")
	return err
}
