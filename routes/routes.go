package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tribook/handlers"
	"tribook/resolvers"
)

// RegisterAvailabilityRoutes registers the slot-grid endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/day", ah.GetDaySlots)
	}
}

// RegisterCatalogRoutes registers reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/services", ch.ListServices)
		catalog.GET("/services/:id", ch.GetService)
	}
	resources := r.Group("/api/resources")
	{
		resources.GET("", ch.ListResources)
		resources.GET("/:id", ch.GetResource)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, resolver *resolvers.Resolver) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/hold", bh.HoldBooking)       // Phase 1: Hold slot
		booking.POST("/confirm", bh.ConfirmBooking) // Phase 2: Confirm booking
		booking.POST("/book", bh.BookDirect)        // One-shot path
		booking.POST("/cancel/:id", bh.CancelBooking)

		// Unified resolver entry point used by the GraphQL-style client.
		booking.POST("/resolve", func(c *gin.Context) {
			var input resolvers.BookSlotInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
				return
			}
			resp, err := resolver.BookSlot(c.Request.Context(), input)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, resp)
		})
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(
	r *gin.Engine,
	ah *handlers.AvailabilityHandler,
	bh *handlers.BookingHandler,
	ch *handlers.CatalogHandler,
	resolver *resolvers.Resolver,
) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, ah)
	RegisterCatalogRoutes(r, ch)
	RegisterBookingRoutes(r, bh, resolver)
	RegisterHealthRoute(r)
}
