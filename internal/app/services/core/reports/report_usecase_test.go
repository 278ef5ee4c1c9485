package reports

import (
	"context"
	"errors"
	"giya-service/internal/app/contracts/mocks"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestReportUsecase_ListReports(t *testing.T) {
	repo := new(mocks.ReportRepository)
	uc := NewReportUsecase(repo, new(mocks.PageCache), "https://giya.ph/api/v1/admin/reports", zap.NewNop())

	id := primitive.NewObjectID()
	reportedAt := time.Date(2026, 3, 2, 4, 0, 0, 0, time.UTC)
	repo.On("List", mock.Anything, 2, 10).Return([]models.ProductReport{{
		ID:          id,
		ProductID:   21,
		ProductName: "Weighted blanket",
		Reasons:     []string{"scam"},
		ReportedAt:  reportedAt,
	}}, int64(25), nil)

	reports, pagination, err := uc.ListReports(context.Background(), &requests.Pagination{Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, id.Hex(), reports[0].ID)
	assert.Equal(t, reportedAt, reports[0].ReportedAt)
	assert.Equal(t, 25, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, "https://giya.ph/api/v1/admin/reports?page=3&page_size=10", pagination.NextURL)
	assert.Equal(t, "https://giya.ph/api/v1/admin/reports?page=1&page_size=10", pagination.PrevURL)
}

func TestReportUsecase_DismissReport(t *testing.T) {
	t.Run("deletes and refreshes the admin listing", func(t *testing.T) {
		repo := new(mocks.ReportRepository)
		pageCache := new(mocks.PageCache)
		uc := NewReportUsecase(repo, pageCache, "", zap.NewNop())

		repo.On("DeleteByID", mock.Anything, "65f0").Return(nil)
		pageCache.On("Invalidate", mock.Anything, []string{constvars.PageAdminReports}).Return(errors.New("redis down"))

		require.NoError(t, uc.DismissReport(context.Background(), "65f0"))
		pageCache.AssertExpectations(t)
	})

	t.Run("unknown report", func(t *testing.T) {
		repo := new(mocks.ReportRepository)
		pageCache := new(mocks.PageCache)
		uc := NewReportUsecase(repo, pageCache, "", zap.NewNop())

		notFound := exceptions.ErrReportNotFound(nil, "65f0")
		repo.On("DeleteByID", mock.Anything, "65f0").Return(notFound)

		err := uc.DismissReport(context.Background(), "65f0")
		assert.Same(t, notFound, err)
		pageCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}
