package parking

import (
	"fmt"
	"time"
)

// FormatDuration renders an elapsed span as a short human-readable string,
// largest unit first, showing only the chosen tier and the next finer one
// (e.g. "2d 3h 10m", "1h 5m", "12m 40s", "8s"). The result is a lossy
// display format and is never used for billing.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours%24, minutes%60)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
