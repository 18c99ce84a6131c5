package openinghours

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yonayona-server/models/place"
)

func TestRemainingMinutes(t *testing.T) {
	tests := []struct {
		name   string
		hours  *place.OpeningHours
		target string
		want   int
		wantOK bool
	}{
		{"three hours before closing", hoursOf(period(1, 18, 0, 1, 23, 0)), "2025-10-27T20:00:00", 180, true},
		{"thirty minutes before closing", hoursOf(period(1, 18, 0, 1, 23, 0)), "2025-10-27T22:30:00", 30, true},
		{"one minute before closing", hoursOf(period(1, 18, 0, 1, 23, 0)), "2025-10-27T22:59:00", 1, true},
		{"exactly at closing", hoursOf(period(1, 18, 0, 1, 23, 0)), "2025-10-27T23:00:00", 0, false},
		{"outside the period", hoursOf(period(1, 18, 0, 1, 23, 0)), "2025-10-27T10:00:00", 0, false},
		{"overnight", hoursOf(period(1, 23, 30, 2, 5, 0)), "2025-10-28T01:00:00", 240, true},
		{"week wrap uses the shifted target", hoursOf(period(6, 22, 0, 0, 5, 0)), "2025-10-26T03:00:00", 120, true},
		{"week wrap before midnight", hoursOf(period(6, 22, 0, 0, 5, 0)), "2025-11-01T23:00:00", 360, true},
		{"always open", hoursOf(period(0, 0, 0, 0, 0, 0)), "2025-10-27T20:00:00", MinutesPerWeek - 2640, true},
		{"no periods", hoursOf(), "2025-10-27T20:00:00", 0, false},
		{
			"first matching period wins",
			hoursOf(period(1, 18, 0, 1, 23, 0), period(1, 19, 0, 2, 2, 0)),
			"2025-10-27T20:00:00",
			180,
			true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := RemainingMinutes(*test.hours, MustParseWallClockInstant(test.target))

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.want, got)
		})
	}
}
