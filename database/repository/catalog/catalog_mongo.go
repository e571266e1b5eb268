// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tribook/models"
)

// ErrServiceNotFound is returned when a lookup matches no definition.
var ErrServiceNotFound = errors.New("service definition not found")

func (repo *MongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.ServiceDefinition, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var def models.ServiceDefinition
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&def); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &def, nil
}

func (repo *MongoCatalogRepo) ListByBusiness(ctx context.Context, businessID string, vertical models.Vertical) ([]models.ServiceDefinition, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"businessId": businessID}
	if vertical != "" {
		filter["vertical"] = vertical
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying services for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var out []models.ServiceDefinition
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	if out == nil {
		out = []models.ServiceDefinition{}
	}
	return out, nil
}

// ResolveRefs fetches every distinct referenced service once and attaches
// the definitions in place. Reservations referencing unknown services keep
// an unresolved ref; duration resolution then falls back to the default.
func (repo *MongoCatalogRepo) ResolveRefs(ctx context.Context, reservations []models.Reservation) error {
	ids := make([]string, 0, len(reservations))
	seen := make(map[string]bool, len(reservations))
	for i := range reservations {
		ref := reservations[i].Service
		if ref == nil || ref.Resolved() || ref.ID == "" || seen[ref.ID] {
			continue
		}
		seen[ref.ID] = true
		ids = append(ids, ref.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("error querying referenced services: %w", err)
	}
	defer cursor.Close(ctx)

	var defs []models.ServiceDefinition
	if err := cursor.All(ctx, &defs); err != nil {
		return fmt.Errorf("error decoding referenced services: %w", err)
	}

	byID := make(map[string]*models.ServiceDefinition, len(defs))
	for i := range defs {
		byID[defs[i].ID] = &defs[i]
	}
	for i := range reservations {
		reservations[i].Service.ResolveWith(func(id string) *models.ServiceDefinition {
			return byID[id]
		})
	}
	return nil
}
