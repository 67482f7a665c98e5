package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"parking-lot-backend/internal/model"
	"parking-lot-backend/internal/parking"
)

// SnapshotDispatcher receives the full domain state after every successful
// mutation. Persistence is fire-and-forget from the handler's point of view.
type SnapshotDispatcher interface {
	Dispatch(model.Snapshot)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	engine *parking.Engine
	writer SnapshotDispatcher
	live   *cache.Cache
}

// NewHandler creates a new API handler.
func NewHandler(engine *parking.Engine, writer SnapshotDispatcher, live *cache.Cache) *Handler {
	return &Handler{
		engine: engine,
		writer: writer,
		live:   live,
	}
}

// snapshot pushes the current state to the persistence writer.
func (h *Handler) snapshot() {
	h.writer.Dispatch(h.engine.Snapshot())
}

// abortWithError maps an engine rejection to an HTTP status.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, parking.ErrInvalidConfig), errors.Is(err, parking.ErrInvalidVehicleID):
		status = http.StatusBadRequest
	case errors.Is(err, parking.ErrVehicleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, parking.ErrVehicleAlreadyParked), errors.Is(err, parking.ErrSlotUnavailable):
		status = http.StatusConflict
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
