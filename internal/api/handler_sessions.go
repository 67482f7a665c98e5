package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parking-lot-backend/internal/monitor"
	"parking-lot-backend/internal/parking"
)

type parkRequest struct {
	VehicleID string `json:"vehicleId" binding:"required"`
	SlotID    int    `json:"slotId" binding:"required"`
}

// ParkVehicle handles POST /api/sessions: it opens a parking session for
// the vehicle in the requested slot.
func (h *Handler) ParkVehicle(c *gin.Context) {
	var req parkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.engine.Park(req.VehicleID, req.SlotID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.snapshot()
	c.JSON(http.StatusCreated, session)
}

// ExitVehicle handles POST /api/sessions/:vehicleId/exit: it closes the
// vehicle's session, bills it, and returns the archived history entry.
func (h *Handler) ExitVehicle(c *gin.Context) {
	entry, err := h.engine.Unpark(c.Param("vehicleId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.snapshot()
	c.JSON(http.StatusOK, entry)
}

// GetActiveSessions handles GET /api/sessions. It serves the monitor's
// last refreshed view when available and computes one on the spot when not
// (for example before the first refresh cycle).
func (h *Handler) GetActiveSessions(c *gin.Context) {
	if view, ok := monitor.LiveSessions(h.live); ok {
		c.JSON(http.StatusOK, view)
		return
	}

	now := time.Now().UTC()
	sessions := h.engine.ActiveSessions()
	view := make([]monitor.LiveSession, len(sessions))
	for i, s := range sessions {
		view[i] = monitor.LiveSession{
			VehicleID: s.VehicleID,
			SlotID:    s.SlotID,
			EntryTime: s.EntryTime,
			Elapsed:   parking.FormatDuration(now.Sub(s.EntryTime)),
		}
	}
	c.JSON(http.StatusOK, view)
}
