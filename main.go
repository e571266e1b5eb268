// File: tribook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tribook/config"
	"tribook/cron"
	"tribook/database"
	catalogRepo "tribook/database/repository/catalog"
	reservationRepo "tribook/database/repository/reservation"
	resourceRepo "tribook/database/repository/resource"
	"tribook/handlers"
	"tribook/middleware"
	"tribook/models"
	"tribook/resolvers"
	"tribook/routes"
	"tribook/services/availability"
	"tribook/services/booking"
	"tribook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	models.ConfigureDefaultHours(config.AppConfig.DefaultOpenMinutes, config.AppConfig.DefaultCloseMinutes)

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resvRepo := reservationRepo.NewMongoReservationRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()
	resRepo := resourceRepo.NewMongoResourceRepo()

	for name, ensure := range map[string]func() error{
		"reservations": resvRepo.EnsureIndexes,
		"services":     catRepo.EnsureIndexes,
		"resources":    resRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	availabilityEngine := &availability.DefaultAvailabilityEngine{
		ReservationRepo: resvRepo,
		CatalogRepo:     catRepo,
		ResourceRepo:    resRepo,
		StepMinutes:     config.AppConfig.SlotStepMinutes,
	}

	bookingService := &booking.DefaultBookingService{
		Availability:    availabilityEngine,
		ReservationRepo: resvRepo,
		CatalogRepo:     catRepo,
		ResourceRepo:    resRepo,
		Sessions:        booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		HoldQueue:       cron.NewHoldQueueClient(),
		HoldTTL:         utils.SessionCacheTTL,
	}

	// Background worker that expires unconfirmed holds.
	cron.InitHoldExpiryWorker(resvRepo)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityEngine, utils.GetCacheClient())
	bookingHandler := handlers.NewBookingHandler(bookingService)
	catalogHandler := handlers.NewCatalogHandler(catRepo, resRepo)

	resolver := &resolvers.Resolver{
		AvailabilityService: availabilityEngine,
		BookingService:      bookingService,
	}

	routes.RegisterRoutes(router, availabilityHandler, bookingHandler, catalogHandler, resolver)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
