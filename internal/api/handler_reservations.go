package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"facility-reservation-backend/internal/booking"
	"facility-reservation-backend/internal/store"
)

type createReservationRequest struct {
	ResourceID   string `json:"resource_id" binding:"required"`
	ResourceName string `json:"resource_name"`
	DateLabel    string `json:"date_label" binding:"required"`
	TimeLabel    string `json:"time_label" binding:"required"`
}

// CreateReservation handles POST /api/reservations. A 409 tells the client
// its availability snapshot went stale: re-query and re-select, the server
// does not retry on its behalf.
func (h *Handler) CreateReservation(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.booking.Create(c.Request.Context(), booking.CreateInput{
		UserID:       userID,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		DateLabel:    req.DateLabel,
		TimeLabel:    req.TimeLabel,
	})
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		case errors.Is(err, store.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "slot is no longer available, please re-select"})
		case errors.Is(err, store.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not confirm reservation, try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not confirm reservation"})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CancelReservation handles POST /api/reservations/:id/cancel. Cancelling an
// already-cancelled or already-completed reservation succeeds without change.
func (h *Handler) CancelReservation(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	res, err := h.booking.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		case errors.Is(err, store.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "reservation belongs to another user"})
		case errors.Is(err, store.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "reservation can no longer be cancelled"})
		case errors.Is(err, store.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not cancel reservation, try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not cancel reservation"})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListUpcomingReservations handles GET /api/reservations/upcoming.
func (h *Handler) ListUpcomingReservations(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	reservations, err := h.booking.ListUpcoming(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not list reservations, try again"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}
