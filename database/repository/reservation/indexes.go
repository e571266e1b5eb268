// FILE: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tribook/models"
)

// EnsureIndexes creates the necessary indexes on the reservations collection.
func (repo *MongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on reservation ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for businessId and date (primary query pattern)
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("business_date_idx"),
		},
		// Last-resort guard against double booking: at most one active
		// reservation per resource, date and start minute. The transactional
		// create path should never hit this, but a write racing past it does
		// not corrupt the calendar.
		{
			Keys: bson.D{{Key: "resourceId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_resource_date_start").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []models.ReservationStatus{models.StatusPending, models.StatusConfirmed}},
				}),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
