// File: database/repository/reservation/reservation_mongo.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tribook/models"
)

// ErrReservationNotFound is returned when a lookup matches no record.
var ErrReservationNotFound = errors.New("reservation not found")

func (repo *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("error fetching reservation with id %s: %w", id, err)
	}
	return &res, nil
}

func (repo *MongoReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Status == "" {
		r.Status = models.StatusPending
	}
	if _, err := repo.coll.InsertOne(ctx, r); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (repo *MongoReservationRepo) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// ExpireHold flips a still-pending reservation to cancelled. Confirmed
// reservations are left alone; the bool reports whether anything changed.
func (repo *MongoReservationRepo) ExpireHold(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{"status": models.StatusCancelled}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to expire reservation hold %s: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}
