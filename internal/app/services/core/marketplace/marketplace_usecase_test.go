package marketplace

import (
	"context"
	"errors"
	"giya-service/internal/app/contracts/mocks"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/schemas"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	uc          *marketplaceUsecase
	marketplace *mocks.MarketplaceBackend
	users       *mocks.UsersBackend
	reports     *mocks.ReportRepository
	storage     *mocks.StorageService
	pageCache   *mocks.PageCache
	notifier    *mocks.Notifier
}

func newFixture() *fixture {
	f := &fixture{
		marketplace: new(mocks.MarketplaceBackend),
		users:       new(mocks.UsersBackend),
		reports:     new(mocks.ReportRepository),
		storage:     new(mocks.StorageService),
		pageCache:   new(mocks.PageCache),
		notifier:    mocks.NewNotifier(),
	}
	f.uc = NewMarketplaceUsecase(f.marketplace, f.users, f.reports, f.storage, f.pageCache, f.notifier, zap.NewNop()).(*marketplaceUsecase)
	f.uc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	return f
}

func product() *schemas.Product {
	return &schemas.Product{
		ID:       21,
		Name:     "Weighted blanket",
		Category: "comfort",
		CreatedBy: schemas.ProductOwner{
			ID:   8,
			User: schemas.ProductOwnerUser{ID: 5},
		},
	}
}

func TestMarketplaceUsecase_GetProduct(t *testing.T) {
	f := newFixture()
	f.marketplace.On("Get", mock.Anything, 21).Return(product(), nil)
	f.users.On("Get", mock.Anything, 5).Return(&schemas.User{
		ID:            5,
		FavoriteItems: schemas.FavoriteItems{{ID: 21}},
	}, nil, nil)

	detail, err := f.uc.GetProduct(context.Background(), &models.Session{UserID: 5}, 21)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorite)
	assert.True(t, detail.IsOwner)
}

func TestMarketplaceUsecase_ReportProduct(t *testing.T) {
	t.Run("posts one report per reason and records them", func(t *testing.T) {
		f := newFixture()
		f.marketplace.On("Get", mock.Anything, 21).Return(product(), nil)

		var (
			mu     sync.Mutex
			posted []string
		)
		f.marketplace.On("Report", mock.Anything, 21, mock.AnythingOfType("*schemas.ReportPayload")).
			Run(func(args mock.Arguments) {
				payload := args.Get(2).(*schemas.ReportPayload)
				mu.Lock()
				defer mu.Unlock()
				posted = append(posted, payload.Reason)
				assert.Equal(t, 8, *payload.ReportedBy)
			}).
			Return(nil)
		f.reports.On("Insert", mock.Anything, mock.MatchedBy(func(r *models.ProductReport) bool {
			return r.ProductName == "Weighted blanket" && len(r.Reasons) == 2 && r.ReporterRole == constvars.RoleCarer
		})).Return("65f0c0ffee", nil)
		f.pageCache.On("Invalidate", mock.Anything, []string{constvars.PageAdminReports}).Return(nil)
		f.notifier.On("Publish", mock.Anything, mock.Anything).Return(nil)

		session := &models.Session{UserID: 6, CarerID: 8, Role: constvars.RoleCarer}
		result, err := f.uc.ReportProduct(context.Background(), session, 21, &requests.ReportProduct{
			Reasons: []string{"scam", " spam ", "scam"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"scam", "spam"}, result.Reasons)
		assert.ElementsMatch(t, []string{"scam", "spam"}, posted)
		f.reports.AssertExpectations(t)

		select {
		case event := <-f.notifier.Events:
			assert.Equal(t, models.EventProductReported, event.Event)
		case <-time.After(time.Second):
			t.Fatal("report event was not published")
		}
	})

	t.Run("a failed report is returned and nothing is recorded", func(t *testing.T) {
		f := newFixture()
		f.marketplace.On("Get", mock.Anything, 21).Return(product(), nil)
		f.marketplace.On("Report", mock.Anything, 21, mock.Anything).Return(errors.New("boom"))

		_, err := f.uc.ReportProduct(context.Background(), &models.Session{UserID: 6}, 21, &requests.ReportProduct{Reasons: []string{"scam"}})
		assert.Error(t, err)
		f.reports.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("blank reasons are rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.ReportProduct(context.Background(), &models.Session{UserID: 6}, 21, &requests.ReportProduct{Reasons: []string{"  "}})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.Fields, "reasons")
	})
}

func TestMarketplaceUsecase_UpdateProduct(t *testing.T) {
	t.Run("someone else's product is forbidden", func(t *testing.T) {
		f := newFixture()
		f.marketplace.On("Get", mock.Anything, 21).Return(product(), nil)

		_, err := f.uc.UpdateProduct(context.Background(), &models.Session{UserID: 99, CarerID: 98}, 21, &requests.UpdateProduct{Name: "x"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		f.marketplace.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("the owner can update", func(t *testing.T) {
		f := newFixture()
		f.marketplace.On("Get", mock.Anything, 21).Return(product(), nil)
		f.marketplace.On("Update", mock.Anything, 21, mock.Anything, mock.Anything).Return(product(), nil)
		f.pageCache.On("Invalidate", mock.Anything, mock.Anything).Return(nil)

		updated, err := f.uc.UpdateProduct(context.Background(), &models.Session{UserID: 5, CarerID: 8}, 21, &requests.UpdateProduct{Price: "150"})
		require.NoError(t, err)
		assert.Equal(t, 21, updated.ID.Int())
	})
}

func TestMarketplaceUsecase_MyProducts(t *testing.T) {
	f := newFixture()
	_, err := f.uc.MyProducts(context.Background(), &models.Session{UserID: 5})
	assert.Error(t, err)

	f.marketplace.On("List", mock.Anything, 8, "").Return(&schemas.Paginated[schemas.Product]{Results: []schemas.Product{*product()}}, nil)
	products, err := f.uc.MyProducts(context.Background(), &models.Session{UserID: 5, CarerID: 8})
	require.NoError(t, err)
	assert.Len(t, products.Results, 1)
}
