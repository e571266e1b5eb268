// File: database/repository/resource/resource_mongo.go
package resourceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tribook/models"
)

// ErrResourceNotFound is returned when a lookup matches no resource.
var ErrResourceNotFound = errors.New("resource not found")

func (repo *MongoResourceRepo) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Resource
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("error fetching resource with id %s: %w", id, err)
	}
	return &res, nil
}

func (repo *MongoResourceRepo) ListByBusiness(ctx context.Context, businessID string, vertical models.Vertical) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"businessId": businessID}
	if vertical != "" {
		filter["vertical"] = vertical
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying resources for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Resource
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding resources: %w", err)
	}
	if out == nil {
		out = []models.Resource{}
	}
	return out, nil
}

// EnsureIndexes creates the necessary indexes on the resources collection.
func (repo *MongoResourceRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "vertical", Value: 1}},
			Options: options.Index().SetName("business_vertical_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create resource indexes: %w", err)
	}
	return nil
}
