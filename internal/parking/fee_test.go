package parking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		elapsed   time.Duration
		rate      float64
		expected  float64
		expectErr error
	}{
		{
			name:     "Near-zero stay charges the one hour minimum",
			elapsed:  3 * time.Second,
			rate:     5.00,
			expected: 5.00,
		},
		{
			name:     "Half an hour charges the one hour minimum",
			elapsed:  30 * time.Minute,
			rate:     5.00,
			expected: 5.00,
		},
		{
			name:     "Exactly one hour charges one hour",
			elapsed:  time.Hour,
			rate:     5.00,
			expected: 5.00,
		},
		{
			name:     "61 minutes rounds up to two hours",
			elapsed:  61 * time.Minute,
			rate:     10.00,
			expected: 20.00,
		},
		{
			name:     "90 minutes rounds up to two hours",
			elapsed:  90 * time.Minute,
			rate:     5.00,
			expected: 10.00,
		},
		{
			name:     "Multi-day stay",
			elapsed:  25 * time.Hour,
			rate:     2.50,
			expected: 62.50,
		},
		{
			name:     "Zero elapsed still charges the minimum",
			elapsed:  0,
			rate:     7.25,
			expected: 7.25,
		},
		{
			name:     "Fee is rounded to two decimals",
			elapsed:  3 * time.Hour,
			rate:     1.111,
			expected: 3.33,
		},
		{
			name:     "Zero rate yields zero fee",
			elapsed:  4 * time.Hour,
			rate:     0,
			expected: 0,
		},
		{
			name:      "Exit before entry is a clock fault",
			elapsed:   -time.Minute,
			rate:      5.00,
			expectErr: ErrInvalidTimeRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fee, err := ComputeFee(base, base.Add(tc.elapsed), tc.rate)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, fee)
			}
		})
	}
}

func TestBilledHours(t *testing.T) {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	hours, err := BilledHours(base, base.Add(119*time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, 2, hours)

	hours, err = BilledHours(base, base.Add(time.Millisecond))
	assert.NoError(t, err)
	assert.Equal(t, MinBilledHours, hours)

	_, err = BilledHours(base, base.Add(-time.Second))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
