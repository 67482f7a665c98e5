package parking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{
			name:     "Seconds only",
			elapsed:  42 * time.Second,
			expected: "42s",
		},
		{
			name:     "Zero duration",
			elapsed:  0,
			expected: "0s",
		},
		{
			name:     "Minutes and seconds",
			elapsed:  5*time.Minute + 30*time.Second,
			expected: "5m 30s",
		},
		{
			name:     "Hours hide seconds",
			elapsed:  2*time.Hour + 15*time.Minute + 59*time.Second,
			expected: "2h 15m",
		},
		{
			name:     "Exactly one hour",
			elapsed:  time.Hour,
			expected: "1h 0m",
		},
		{
			name:     "Days hide seconds",
			elapsed:  49*time.Hour + 5*time.Minute,
			expected: "2d 1h 5m",
		},
		{
			name:     "Exactly one day",
			elapsed:  24 * time.Hour,
			expected: "1d 0h 0m",
		},
		{
			name:     "Negative clamps to zero",
			elapsed:  -3 * time.Second,
			expected: "0s",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatDuration(tc.elapsed))
		})
	}
}
