package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"facility-reservation-backend/internal/availability"
	"facility-reservation-backend/internal/store"
)

// GetAvailability handles GET /api/resources/:resource_id/availability.
// The date query parameter is the display label the reservation will carry,
// e.g. "Mon, Jan 6". The response is computed fresh on every call; a failed
// ledger read is 503, never an all-free answer.
func (h *Handler) GetAvailability(c *gin.Context) {
	resourceID := c.Param("resource_id")
	dateLabel := c.Query("date")
	if dateLabel == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	if _, err := h.store.GetResource(c.Request.Context(), resourceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "availability is temporarily unavailable"})
		return
	}

	snap, err := h.availability.Get(c.Request.Context(), resourceID, dateLabel)
	if err != nil {
		if errors.Is(err, availability.ErrUnavailable) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "availability is temporarily unavailable"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, snap)
}
