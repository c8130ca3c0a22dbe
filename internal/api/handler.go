package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"facility-reservation-backend/internal/availability"
	"facility-reservation-backend/internal/booking"
	"facility-reservation-backend/internal/store"
)

// CallerHeader carries the opaque, already-authenticated user identity. The
// upstream identity layer sets it; this service never verifies identity
// itself.
const CallerHeader = "X-User-ID"

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store        store.Store
	booking      *booking.Service
	availability *availability.Query
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, bk *booking.Service, avq *availability.Query) *Handler {
	return &Handler{
		store:        s,
		booking:      bk,
		availability: avq,
	}
}

// callerID extracts the authenticated user id from the request. Mutating
// endpoints abort with 401 when it is missing.
func callerID(c *gin.Context) (string, bool) {
	id := c.GetHeader(CallerHeader)
	if id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return "", false
	}
	return id, true
}
