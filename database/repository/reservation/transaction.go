// File: database/repository/reservation/transaction.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"tribook/models"
)

// CreateValidated performs the check-and-insert the booking flow relies
// on: inside one Mongo transaction it re-reads the day's reservations,
// hands them to validate, and inserts only when validate accepts. A
// conflicting booking confirmed after the client last saw the slot grid
// therefore aborts the insert instead of double-booking the resource.
func (repo *MongoReservationRepo) CreateValidated(
	ctx context.Context,
	r *models.Reservation,
	validate func(existing []models.Reservation) error,
) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Status == "" {
		r.Status = models.StatusPending
	}

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		existing, err := repo.listForDayWith(sc, r.BusinessID, r.Date, r.ResourceID)
		if err != nil {
			return nil, err
		}
		if err := validate(existing); err != nil {
			return nil, err
		}
		if _, err := repo.coll.InsertOne(sc, r); err != nil {
			return nil, fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		return err
	}
	return nil
}
