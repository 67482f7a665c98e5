package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"parking-lot-backend/internal/mw"
	"parking-lot-backend/internal/parking"
)

// RouterOptions tunes the middleware applied to the API group.
type RouterOptions struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	CacheTTL        time.Duration
}

// NewRouter creates and configures a new Gin router around the engine.
func NewRouter(engine *parking.Engine, writer SnapshotDispatcher, live *cache.Cache, opts RouterOptions) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(engine, writer, live)

	rateLimiter := mw.RateLimiter(rate.Limit(opts.RateLimitPerSec), opts.RateLimitBurst)
	caching := mw.Cache(cache.New(opts.CacheTTL, 10*opts.CacheTTL), opts.CacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/slots", handler.GetSlots)

		api.GET("/sessions", handler.GetActiveSessions)
		api.POST("/sessions", handler.ParkVehicle)
		api.POST("/sessions/:vehicleId/exit", handler.ExitVehicle)

		api.GET("/history", handler.GetHistory)
		api.GET("/stats", handler.GetStats)
		api.GET("/report", caching, handler.GetReport)

		api.GET("/settings", handler.GetSettings)
		api.PUT("/settings/slots", handler.UpdateSlotCount)
		api.PUT("/settings/rate", handler.UpdateHourlyRate)

		api.DELETE("/data", handler.ClearAll)
	}

	return r
}
