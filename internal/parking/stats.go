package parking

import (
	"math"

	"parking-lot-backend/internal/model"
)

// Stats is a read-only aggregate view over the current domain state. It is
// recomputed on demand and never stored.
type Stats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	OccupancyRate  float64 `json:"occupancyRate"`
	TotalSlots     int     `json:"totalSlots"`
	OccupiedSlots  int     `json:"occupiedSlots"`
	AvailableSlots int     `json:"availableSlots"`
}

// ComputeStats derives the aggregate view from the history log and the
// registry occupancy counts. The occupancy rate is a percentage with one
// decimal place, 0 when there are no slots at all.
func ComputeStats(history []model.HistoryEntry, occupied, total int) Stats {
	revenue := 0.0
	for _, h := range history {
		revenue += h.Payment
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(occupied)/float64(total)*1000) / 10
	}

	return Stats{
		TotalRevenue:   math.Round(revenue*100) / 100,
		OccupancyRate:  rate,
		TotalSlots:     total,
		OccupiedSlots:  occupied,
		AvailableSlots: total - occupied,
	}
}
