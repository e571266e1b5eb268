// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tribook/models"
)

// dayFilter matches the active reservations of a business on a calendar
// day. Legacy records sometimes store the date with a trailing time-of-day
// component ("2024-03-01T14:00:00Z"), so the date is matched by prefix and
// callers compare by calendar day again on the Go side.
func dayFilter(businessID, date, resourceID string) bson.M {
	filter := bson.M{
		"businessId": businessID,
		"date":       bson.M{"$regex": "^" + date},
		"status":     bson.M{"$nin": []models.ReservationStatus{models.StatusCancelled, models.StatusNoShow}},
	}
	if resourceID != "" {
		filter["resourceId"] = resourceID
	}
	return filter
}

func (repo *MongoReservationRepo) ListForDay(ctx context.Context, businessID, date, resourceID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, dayFilter(businessID, date, resourceID))
	if err != nil {
		return nil, fmt.Errorf("error querying reservations for business %s on %s: %w", businessID, date, err)
	}
	defer cursor.Close(ctx)

	return decodeReservations(ctx, cursor)
}

// listForDayWith runs the same query against an explicit session context,
// used by the transactional create path.
func (repo *MongoReservationRepo) listForDayWith(sc mongo.SessionContext, businessID, date, resourceID string) ([]models.Reservation, error) {
	cursor, err := repo.coll.Find(sc, dayFilter(businessID, date, resourceID))
	if err != nil {
		return nil, fmt.Errorf("error querying reservations for business %s on %s: %w", businessID, date, err)
	}
	defer cursor.Close(sc)

	return decodeReservations(sc, cursor)
}

func decodeReservations(ctx context.Context, cursor *mongo.Cursor) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	if out == nil {
		out = []models.Reservation{}
	}
	return out, nil
}
