package repository

import (
	catalogRepo "tribook/database/repository/catalog"
	reservationRepo "tribook/database/repository/reservation"
	resourceRepo "tribook/database/repository/resource"
)

// Re-export the ReservationRepository interface and constructor.
type ReservationRepository = reservationRepo.ReservationRepository

var NewMongoReservationRepo = reservationRepo.NewMongoReservationRepo

// Re-export the CatalogRepository interface and constructor.
type CatalogRepository = catalogRepo.CatalogRepository

var NewMongoCatalogRepo = catalogRepo.NewMongoCatalogRepo

// Re-export the ResourceRepository interface and constructor.
type ResourceRepository = resourceRepo.ResourceRepository

var NewMongoResourceRepo = resourceRepo.NewMongoResourceRepo
