// File: database/repository/panchang/crud.go
package panchangRepo

import (
	"context"
	"errors"
	"time"

	"panchang/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPanchangRepo) Upsert(ctx context.Context, payload models.DailyPanchang) error {
	if payload.Date == "" {
		return errors.New("payload has no date")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": payload.Date}
	update := bson.M{"$set": payload}
	opts := options.Update().SetUpsert(true)

	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *mongoPanchangRepo) GetByDate(ctx context.Context, date string) (*models.DailyPanchang, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payload models.DailyPanchang
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&payload)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &payload, nil
}
