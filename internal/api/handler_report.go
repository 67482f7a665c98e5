package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const reportLinesPerPage = 50

// GetReport handles GET /api/report: a plain-text snapshot of the whole
// lot (statistics, slot status, active sessions, history), paginated with
// a footer per page. It only reads state.
func (h *Handler) GetReport(c *gin.Context) {
	now := time.Now().UTC()
	stats := h.engine.Stats()
	settings := h.engine.Settings()

	var lines []string
	addf := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	addf("Car Parking Management Report")
	addf("Generated on: %s", now.Format(time.RFC1123))
	addf("")

	addf("Statistics Overview")
	addf("  Total Revenue:  %.2f", stats.TotalRevenue)
	addf("  Occupancy Rate: %.1f%%", stats.OccupancyRate)
	addf("  Available Slots: %d", stats.AvailableSlots)
	addf("  Total Slots:     %d", stats.TotalSlots)
	addf("  Hourly Rate:    %.2f", settings.HourlyRate)
	addf("")

	addf("Parking Slots Status")
	occupied := h.engine.OccupiedSlots()
	if len(occupied) == 0 {
		addf("  No occupied slots")
	}
	for _, s := range occupied {
		addf("  Slot %d: %s", s.ID, *s.VehicleID)
	}
	free := h.engine.FreeSlots()
	freeIDs := make([]string, len(free))
	for i, s := range free {
		freeIDs[i] = fmt.Sprintf("%d", s.ID)
	}
	if len(freeIDs) > 0 {
		addf("  Available: %s", strings.Join(freeIDs, ", "))
	} else {
		addf("  No available slots")
	}
	addf("")

	addf("Active Parking Sessions")
	sessions := h.engine.ActiveSessions()
	if len(sessions) == 0 {
		addf("  No active sessions")
	}
	for _, s := range sessions {
		addf("  %-12s slot %-3d entered %s", s.VehicleID, s.SlotID, s.EntryTime.Format(time.RFC3339))
	}
	addf("")

	addf("Parking History (most recent first)")
	history := h.engine.History()
	if len(history) == 0 {
		addf("  No history available")
	}
	for i := len(history) - 1; i >= 0; i-- {
		e := history[i]
		addf("  %-12s slot %-3d %s -> %s  %-10s %.2f",
			e.VehicleID, e.SlotID,
			e.EntryTime.Format("2006-01-02 15:04"), e.ExitTime.Format("2006-01-02 15:04"),
			e.Duration, e.Payment)
	}

	c.String(http.StatusOK, paginate(lines))
}

// paginate joins lines into pages of reportLinesPerPage with a page footer.
func paginate(lines []string) string {
	pages := (len(lines) + reportLinesPerPage - 1) / reportLinesPerPage
	if pages == 0 {
		pages = 1
	}

	var b strings.Builder
	for p := 0; p < pages; p++ {
		start := p * reportLinesPerPage
		end := start + reportLinesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		for _, line := range lines[start:end] {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("--- Page %d of %d ---\n", p+1, pages))
	}
	return b.String()
}
