package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductReport records a report forwarded to the backend so admins can
// review it later.
type ProductReport struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ProductID       int                `bson:"productId"`
	ProductName     string             `bson:"productName"`
	ProductCategory string             `bson:"productCategory"`
	Reasons         []string           `bson:"reasons"`
	ReporterUserID  int                `bson:"reporterUserId"`
	ReporterRole    string             `bson:"reporterRole"`
	ReportedAt      time.Time          `bson:"reportedAt"`
	TimeModel       `bson:",inline"`
}
