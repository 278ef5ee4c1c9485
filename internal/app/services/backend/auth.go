package backend

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/schemas"
)

type authBackend struct {
	client *Client
}

func NewAuthBackend(client *Client) contracts.AuthBackend {
	return &authBackend{client: client}
}

func (b *authBackend) Login(ctx context.Context, payload *schemas.LoginPayload) (*schemas.AuthResponse, error) {
	raw, err := b.client.sendJSON(ctx, constvars.MethodPost, "/auth/login/", payload)
	if err != nil {
		return nil, err
	}
	return parse[schemas.AuthResponse](raw, constvars.ResourceAuth)
}

func (b *authBackend) Register(ctx context.Context, payload *schemas.RegisterPayload) error {
	_, err := b.client.sendJSON(ctx, constvars.MethodPost, "/auth/register", payload)
	return err
}
