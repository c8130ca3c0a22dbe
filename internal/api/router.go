package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"facility-reservation-backend/config"
	"facility-reservation-backend/internal/availability"
	"facility-reservation-backend/internal/booking"
	"facility-reservation-backend/internal/mw"
	"facility-reservation-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, s store.Store, bk *booking.Service, avq *availability.Query) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, bk, avq)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// The cache guards only the static resource catalog. Availability and
	// reservation routes are never cached: a stale availability answer would
	// contradict the ledger.
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/resources", caching, handler.GetResources)
		api.GET("/resources/:resource_id", caching, handler.GetResource)
		api.GET("/resources/:resource_id/availability", handler.GetAvailability)

		api.POST("/reservations", handler.CreateReservation)
		api.POST("/reservations/:id/cancel", handler.CancelReservation)
		api.GET("/reservations/upcoming", handler.ListUpcomingReservations)
	}

	return r
}
