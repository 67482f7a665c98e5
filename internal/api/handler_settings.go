package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Settings())
}

type updateSlotsRequest struct {
	SlotCount int `json:"slotCount" binding:"required"`
}

// UpdateSlotCount handles PUT /api/settings/slots. Destructive: the whole
// registry is rebuilt and sessions and history are discarded. The UI is
// expected to confirm with the operator before calling this.
func (h *Handler) UpdateSlotCount(c *gin.Context) {
	var req updateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.engine.SetSlotCount(req.SlotCount); err != nil {
		abortWithError(c, err)
		return
	}

	h.snapshot()
	c.JSON(http.StatusOK, h.engine.Settings())
}

type updateRateRequest struct {
	HourlyRate *float64 `json:"hourlyRate" binding:"required"`
}

// UpdateHourlyRate handles PUT /api/settings/rate.
func (h *Handler) UpdateHourlyRate(c *gin.Context) {
	var req updateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.engine.SetHourlyRate(*req.HourlyRate); err != nil {
		abortWithError(c, err)
		return
	}

	h.snapshot()
	c.JSON(http.StatusOK, h.engine.Settings())
}

// ClearAll handles DELETE /api/data: every slot is freed and all sessions
// and history are dropped. Settings are kept. The UI is expected to double
// confirm before calling this.
func (h *Handler) ClearAll(c *gin.Context) {
	h.engine.ClearAll()
	h.snapshot()
	c.Status(http.StatusNoContent)
}
