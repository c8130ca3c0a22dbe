package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"facility-reservation-backend/internal/store"
)

// GetResources handles the GET /api/resources request. The catalog is
// provisioned externally and read-only here, so the route sits behind the
// response cache.
func (h *Handler) GetResources(c *gin.Context) {
	resources, err := h.store.ListResources(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "failed to retrieve resources"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// GetResource handles the GET /api/resources/:resource_id request.
func (h *Handler) GetResource(c *gin.Context) {
	res, err := h.store.GetResource(c.Request.Context(), c.Param("resource_id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "failed to retrieve resource"})
		return
	}
	c.JSON(http.StatusOK, res)
}
