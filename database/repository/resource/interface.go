// File: database/repository/resource/interface.go
package resourceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tribook/database"
	"tribook/models"
)

// ResourceRepository serves bookable resources and their business-hours
// overrides.
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	ListByBusiness(ctx context.Context, businessID string, vertical models.Vertical) ([]models.Resource, error)
	EnsureIndexes() error
}

// MongoResourceRepo implements ResourceRepository using MongoDB.
type MongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo constructs a new MongoDB ResourceRepository.
func NewMongoResourceRepo() ResourceRepository {
	return &MongoResourceRepo{
		coll: database.DB().Collection("resources"),
	}
}
