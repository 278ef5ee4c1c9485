package reports

import (
	"context"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestReportMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns the hex id", func(mt *mtest.T) {
		repo := &ReportMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Insert(context.Background(), &models.ProductReport{
			ID:        primitive.NewObjectID(),
			ProductID: 21,
			Reasons:   []string{"scam"},
		})
		require.NoError(t, err)
		assert.Len(t, id, 24)
	})

	mt.Run("list pages newest first", func(mt *mtest.T) {
		repo := &ReportMongoRepository{Collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		id := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "productId", Value: 21},
				{Key: "productName", Value: "Weighted blanket"},
				{Key: "reasons", Value: bson.A{"scam"}},
				{Key: "reportedAt", Value: time.Date(2026, 3, 2, 4, 0, 0, 0, time.UTC)},
			}),
		)

		reports, total, err := repo.List(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, reports, 1)
		assert.Equal(t, id, reports[0].ID)
		assert.Equal(t, "Weighted blanket", reports[0].ProductName)
	})

	mt.Run("delete of a missing report is not found", func(mt *mtest.T) {
		repo := &ReportMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	mt.Run("delete rejects a malformed id", func(mt *mtest.T) {
		repo := &ReportMongoRepository{Collection: mt.Coll}

		err := repo.DeleteByID(context.Background(), "not-an-object-id")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
