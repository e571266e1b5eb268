// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tribook/database"
	"tribook/models"
)

// CatalogRepository serves the immutable service reference data: salon
// treatments, room categories, table seatings and their add-on options.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.ServiceDefinition, error)
	ListByBusiness(ctx context.Context, businessID string, vertical models.Vertical) ([]models.ServiceDefinition, error)
	// ResolveRefs loads the definitions referenced by ID-only ServiceRefs,
	// so downstream code only ever sees resolved refs. Unknown IDs are left
	// unresolved rather than failing the batch.
	ResolveRefs(ctx context.Context, reservations []models.Reservation) error
	EnsureIndexes() error
}

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		coll: database.DB().Collection("services"),
	}
}
