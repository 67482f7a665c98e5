package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-lot-backend/internal/model"
)

// GetHistory handles GET /api/history, most recent exit first.
func (h *Handler) GetHistory(c *gin.Context) {
	history := h.engine.History()

	reversed := make([]model.HistoryEntry, len(history))
	for i, entry := range history {
		reversed[len(history)-1-i] = entry
	}
	c.JSON(http.StatusOK, reversed)
}
