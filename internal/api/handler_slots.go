package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSlots handles GET /api/slots. The optional status query filters to
// free or occupied slots; results are always ordered by slot id.
func (h *Handler) GetSlots(c *gin.Context) {
	switch c.Query("status") {
	case "":
		c.JSON(http.StatusOK, h.engine.Slots())
	case "free":
		c.JSON(http.StatusOK, h.engine.FreeSlots())
	case "occupied":
		c.JSON(http.StatusOK, h.engine.OccupiedSlots())
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "status must be 'free' or 'occupied'"})
	}
}
