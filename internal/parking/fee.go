package parking

import (
	"fmt"
	"math"
	"time"
)

// MinBilledHours is the minimum charge applied to any stay, however short.
const MinBilledHours = 1

// BilledHours returns the number of chargeable hours for a stay: the elapsed
// time rounded up to the next whole hour, with a one-hour minimum.
func BilledHours(entry, exit time.Time) (int, error) {
	if exit.Before(entry) {
		return 0, fmt.Errorf("%w: entry %s, exit %s", ErrInvalidTimeRange,
			entry.Format(time.RFC3339), exit.Format(time.RFC3339))
	}
	hours := int(math.Ceil(exit.Sub(entry).Hours()))
	if hours < MinBilledHours {
		hours = MinBilledHours
	}
	return hours, nil
}

// ComputeFee computes the charge for a stay at the given hourly rate,
// rounded to two decimal places.
func ComputeFee(entry, exit time.Time, hourlyRate float64) (float64, error) {
	hours, err := BilledHours(entry, exit)
	if err != nil {
		return 0, err
	}
	return math.Round(float64(hours)*hourlyRate*100) / 100, nil
}
