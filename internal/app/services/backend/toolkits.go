package backend

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/schemas"
)

type toolkitsBackend struct {
	client *Client
}

func NewToolkitsBackend(client *Client) contracts.ToolkitsBackend {
	return &toolkitsBackend{client: client}
}

func (b *toolkitsBackend) List(ctx context.Context) (*schemas.Paginated[schemas.Toolkit], error) {
	raw, err := b.client.Do(ctx, constvars.MethodGet, "/toolkits", nil, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Paginated[schemas.Toolkit]](raw, constvars.ResourceToolkits)
}

func (b *toolkitsBackend) Get(ctx context.Context, toolkitID int) (*schemas.Toolkit, error) {
	raw, err := b.client.Do(ctx, constvars.MethodGet, idPath(constvars.ResourceToolkits, toolkitID), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Toolkit](raw, constvars.ResourceToolkits)
}

func (b *toolkitsBackend) Create(ctx context.Context, body []byte, contentType string) (*schemas.Toolkit, error) {
	raw, err := b.client.Do(ctx, constvars.MethodPost, "/toolkits", nil, body, contentType)
	if err != nil {
		return nil, err
	}
	return parse[schemas.Toolkit](raw, constvars.ResourceToolkits)
}

func (b *toolkitsBackend) Update(ctx context.Context, toolkitID int, body []byte, contentType string) (*schemas.Toolkit, error) {
	raw, err := b.client.Do(ctx, constvars.MethodPatch, idPath(constvars.ResourceToolkits, toolkitID), nil, body, contentType)
	if err != nil {
		return nil, err
	}
	return parse[schemas.Toolkit](raw, constvars.ResourceToolkits)
}
