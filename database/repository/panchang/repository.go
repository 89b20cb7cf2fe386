// File: database/repository/panchang/repository.go
package panchangRepo

import (
	"context"

	"panchang/database"
	"panchang/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PanchangRepository archives every fetched daily payload and serves
// historical reads when the upstream API is unavailable.
type PanchangRepository interface {
	Upsert(ctx context.Context, payload models.DailyPanchang) error
	GetByDate(ctx context.Context, date string) (*models.DailyPanchang, error)
}

type mongoPanchangRepo struct {
	coll *mongo.Collection
}

// NewMongoPanchangRepo returns a Mongo-backed archive over the
// "daily_panchang" collection.
func NewMongoPanchangRepo() PanchangRepository {
	return &mongoPanchangRepo{
		coll: database.GetDB().Collection("daily_panchang"),
	}
}
