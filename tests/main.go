package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"tribook/config"
	"tribook/database"
	"tribook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeder for local development: wipes and repopulates the catalog,
// resource, and reservation collections with one business per vertical
// and a week of randomized bookings.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, name := range []string{"services", "resources", "reservations"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	rand.Seed(time.Now().UnixNano())

	type seedBusiness struct {
		ID       string
		Vertical models.Vertical
		Services []models.ServiceDefinition
		Rooms    []string
	}

	businesses := []seedBusiness{
		{
			ID:       "biz-hotel-1",
			Vertical: models.VerticalHotel,
			Services: []models.ServiceDefinition{
				{Name: "Standard Stay Check-in", BaseDurationMinutes: 30, BasePrice: 0},
				{Name: "Spa Session", BaseDurationMinutes: 60, BasePrice: 45, Options: []models.ServiceOption{
					{Name: "hot-stone", DurationImpactMinutes: 30, PriceImpact: 20},
					{Name: "aromatherapy", DurationImpactMinutes: 15, PriceImpact: 10},
				}},
			},
			Rooms: []string{"room-101", "room-102", "spa-1"},
		},
		{
			ID:       "biz-restaurant-1",
			Vertical: models.VerticalRestaurant,
			Services: []models.ServiceDefinition{
				{Name: "Dinner Seating", BaseDurationMinutes: 90, BasePrice: 0, Options: []models.ServiceOption{
					{Name: "tasting-menu", DurationImpactMinutes: 60, PriceImpact: 55},
				}},
				{Name: "Lunch Seating", BaseDurationMinutes: 60, BasePrice: 0},
			},
			Rooms: []string{"table-1", "table-2", "table-3", "table-4"},
		},
		{
			ID:       "biz-salon-1",
			Vertical: models.VerticalSalon,
			Services: []models.ServiceDefinition{
				{Name: "Haircut", BaseDurationMinutes: 30, BasePrice: 25, Options: []models.ServiceOption{
					{Name: "coloring", DurationImpactMinutes: 60, PriceImpact: 40},
					{Name: "wash", DurationImpactMinutes: 15, PriceImpact: 5},
				}},
				{Name: "Manicure", BaseDurationMinutes: 45, BasePrice: 30},
			},
			Rooms: []string{"chair-1", "chair-2"},
		},
	}

	var serviceDocs []interface{}
	var resourceDocs []interface{}
	var serviceIDs = map[string][]models.ServiceDefinition{}

	for _, biz := range businesses {
		for i := range biz.Services {
			svc := biz.Services[i]
			svc.ID = uuid.New().String()
			svc.BusinessID = biz.ID
			svc.Vertical = biz.Vertical
			serviceDocs = append(serviceDocs, svc)
			serviceIDs[biz.ID] = append(serviceIDs[biz.ID], svc)
		}
		for _, room := range biz.Rooms {
			resourceDocs = append(resourceDocs, models.Resource{
				ID:         room,
				BusinessID: biz.ID,
				Vertical:   biz.Vertical,
				Name:       room,
			})
		}
	}

	if _, err := db.Collection("services").InsertMany(ctx, serviceDocs); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}
	if _, err := db.Collection("resources").InsertMany(ctx, resourceDocs); err != nil {
		log.Fatalf("Failed to seed resources: %v", err)
	}

	// A week of randomized confirmed reservations, a few per resource per day.
	var reservationDocs []interface{}
	today := time.Now()
	for d := 0; d < 7; d++ {
		date := today.AddDate(0, 0, d).Format("2006-01-02")
		for _, biz := range businesses {
			for _, room := range biz.Rooms {
				taken := map[int]bool{}
				for n := 0; n < rand.Intn(3)+1; n++ {
					svc := serviceIDs[biz.ID][rand.Intn(len(serviceIDs[biz.ID]))]
					start := 540 + 30*rand.Intn(14)
					if taken[start] {
						continue
					}
					taken[start] = true
					reservationDocs = append(reservationDocs, models.Reservation{
						ID:         uuid.New().String(),
						BusinessID: biz.ID,
						ResourceID: room,
						Date:       date,
						Start:      start,
						Status:     models.StatusConfirmed,
						Service:    &models.ServiceRef{ID: svc.ID},
						CreatedAt:  time.Now(),
					})
				}
			}
		}
	}

	if _, err := db.Collection("reservations").InsertMany(ctx, reservationDocs); err != nil {
		log.Fatalf("Failed to seed reservations: %v", err)
	}

	fmt.Printf("Seeded %d services, %d resources, %d reservations across 7 days\n",
		len(serviceDocs), len(resourceDocs), len(reservationDocs))
}
