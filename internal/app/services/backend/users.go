package backend

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"net/url"
	"strconv"
)

type usersBackend struct {
	client *Client
}

func NewUsersBackend(client *Client) contracts.UsersBackend {
	return &usersBackend{client: client}
}

// Get returns the parsed user along with the raw document, which still
// holds the nested carer and professional profiles.
func (b *usersBackend) Get(ctx context.Context, userID int) (*schemas.User, []byte, error) {
	raw, err := b.client.Do(ctx, constvars.MethodGet, idPath(constvars.ResourceUsers, userID), nil, nil, "")
	if err != nil {
		return nil, nil, err
	}
	user, err := schemas.ParseUser(raw)
	if err != nil {
		if schemas.IsValidationError(err) {
			return nil, nil, exceptions.ErrSchemaMismatch(err, constvars.ResourceUsers)
		}
		return nil, nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUsers)
	}
	return &user, raw, nil
}

func (b *usersBackend) ListProfessionals(ctx context.Context, page int) (*schemas.Paginated[schemas.Professional], error) {
	query := url.Values{}
	query.Set(constvars.URLQueryParamUserType, constvars.UserTypeProfessional)
	if page > 1 {
		query.Set(constvars.URLQueryParamPage, strconv.Itoa(page))
	}
	raw, err := b.client.Do(ctx, constvars.MethodGet, "/users", query, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Paginated[schemas.Professional]](raw, constvars.ResourceUsers)
}

func (b *usersBackend) GetProfessional(ctx context.Context, userID int) (*schemas.Professional, error) {
	raw, err := b.client.Do(ctx, constvars.MethodGet, idPath(constvars.ResourceUsers, userID), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Professional](raw, constvars.ResourceUsers)
}

func (b *usersBackend) RegisterProfessional(ctx context.Context, body []byte, contentType string) error {
	_, err := b.client.Do(ctx, constvars.MethodPost, "/users/register-professional", nil, body, contentType)
	return err
}

func (b *usersBackend) AdminUpdate(ctx context.Context, userID int, body []byte, contentType string) error {
	_, err := b.client.Do(ctx, constvars.MethodPatch, idPath(constvars.ResourceUsers, userID), nil, body, contentType)
	return err
}

func (b *usersBackend) UpdateSettings(ctx context.Context, userID int, body []byte, contentType string) error {
	_, err := b.client.Do(ctx, constvars.MethodPut, idPath(constvars.ResourceUsers, userID), nil, body, contentType)
	return err
}

func (b *usersBackend) UpdatePricing(ctx context.Context, userID int, payload *schemas.PricingPayload) error {
	_, err := b.client.sendJSON(ctx, constvars.MethodPut, idPath(constvars.ResourceUsers, userID, "pricing"), payload)
	return err
}

// Favorites reads the favorite products embedded in the carer profile.
func (b *usersBackend) Favorites(ctx context.Context, userID int) ([]schemas.Product, error) {
	raw, err := b.client.Do(ctx, constvars.MethodGet, idPath(constvars.ResourceUsers, userID), nil, nil, "")
	if err != nil {
		return nil, err
	}
	products, err := schemas.ParseFavoriteProducts(raw)
	if err != nil {
		return nil, exceptions.ErrSchemaMismatch(err, constvars.ResourceMarketplace)
	}
	return products, nil
}
