package reports

import (
	"context"
	"errors"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Database) contracts.ReportRepository {
	return &ReportMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionProductReports),
	}
}

func (repo *ReportMongoRepository) Insert(ctx context.Context, report *models.ProductReport) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, report)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

// List returns one page of reports, newest first, with the total count.
func (repo *ReportMongoRepository) List(ctx context.Context, page, pageSize int) ([]models.ProductReport, int64, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "reportedAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	reports := []models.ProductReport{}
	err = cursor.All(ctx, &reports)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reports, total, nil
}

func (repo *ReportMongoRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrReportNotFound(errors.New("no document matched"), id)
	}
	return nil
}
