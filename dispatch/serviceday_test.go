package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServiceDayWindow(t *testing.T) {
	loc := time.FixedZone("PHT", 8*3600)

	testCases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
	}{
		{
			name:      "AfterBoundary",
			now:       time.Date(2024, 3, 15, 9, 0, 0, 0, loc),
			wantStart: time.Date(2024, 3, 15, 8, 0, 0, 0, loc),
		},
		{
			// 07:59 仍属于前一个服务日
			name:      "BeforeBoundary",
			now:       time.Date(2024, 3, 15, 7, 59, 0, 0, loc),
			wantStart: time.Date(2024, 3, 14, 8, 0, 0, 0, loc),
		},
		{
			name:      "ExactlyAtBoundary",
			now:       time.Date(2024, 3, 15, 8, 0, 0, 0, loc),
			wantStart: time.Date(2024, 3, 15, 8, 0, 0, 0, loc),
		},
		{
			name:      "JustBeforeMidnight",
			now:       time.Date(2024, 3, 15, 23, 59, 59, 0, loc),
			wantStart: time.Date(2024, 3, 15, 8, 0, 0, 0, loc),
		},
		{
			name:      "AfterMidnightBeforeBoundary",
			now:       time.Date(2024, 3, 16, 0, 30, 0, 0, loc),
			wantStart: time.Date(2024, 3, 15, 8, 0, 0, 0, loc),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := ServiceDayWindow(tc.now, 8)
			require.True(t, start.Equal(tc.wantStart), "start = %v, want %v", start, tc.wantStart)
			require.True(t, end.Equal(tc.wantStart.AddDate(0, 0, 1)))
			require.False(t, tc.now.Before(start))
			require.True(t, tc.now.Before(end))
		})
	}
}

func TestServiceDayID(t *testing.T) {
	loc := time.FixedZone("PHT", 8*3600)

	// 07:59 仍属于前一个服务日
	require.Equal(t, "2024-03-14", ServiceDayID(time.Date(2024, 3, 15, 7, 59, 0, 0, loc), 8))
	require.Equal(t, "2024-03-15", ServiceDayID(time.Date(2024, 3, 15, 8, 0, 0, 0, loc), 8))
	require.Equal(t, "2024-03-15", ServiceDayID(time.Date(2024, 3, 16, 1, 0, 0, 0, loc), 8))
}
