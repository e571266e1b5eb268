// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tribook/database"
	"tribook/models"
)

// ReservationRepository is the engine's input provider for existing
// bookings, and the write path for new ones.
type ReservationRepository interface {
	// ListForDay returns the non-cancelled reservations of a business on a
	// date. An empty resourceID returns every reservation of the business
	// that day, so callers without a selected resource stay conservative.
	ListForDay(ctx context.Context, businessID, date, resourceID string) ([]models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	Create(ctx context.Context, r *models.Reservation) error
	// CreateValidated re-reads the day's reservations and inserts the new
	// record in one transaction. The validate callback sees the fresh set
	// and returns an error to abort the insert.
	CreateValidated(ctx context.Context, r *models.Reservation, validate func(existing []models.Reservation) error) error
	UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error
	// ExpireHold cancels a reservation only while it is still pending.
	ExpireHold(ctx context.Context, id string) (bool, error)
	EnsureIndexes() error
}

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	return &MongoReservationRepo{
		coll: database.DB().Collection("reservations"),
	}
}
