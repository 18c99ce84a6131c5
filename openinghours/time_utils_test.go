package openinghours

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yonayona-server/models/place"
)

func TestWeeklyMinutesOfString_CalendarWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		instant string
		want    int
	}{
		{"monday evening", "2025-10-27T20:00:00", 1*MinutesPerDay + 20*60},
		{"sunday midnight", "2025-10-26T00:00:00", 0},
		{"saturday last minute", "2025-11-01T23:59:59", 6*MinutesPerDay + 23*60 + 59},
		{"new year's day is a wednesday", "2025-01-01T00:00:00", 3 * MinutesPerDay},
		{"new year's eve is a tuesday", "2024-12-31T23:59:00", 2*MinutesPerDay + 23*60 + 59},
		{"leap day is a thursday", "2024-02-29T12:30:00", 4*MinutesPerDay + 12*60 + 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := WeeklyMinutesOfString(test.instant)

			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestWeeklyMinutesOfString_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"2025-10-27 20:00:00",
		"2025-10-27T20:00:00Z",
		"2025-10-27T20:00:00+09:00",
		"2025-10-27T20:00",
		"2025-13-01T00:00:00",
		"2025-02-30T00:00:00",
		"2025-10-27T24:00:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := WeeklyMinutesOfString(input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInstant), "expected ErrMalformedInstant, got %v", err)
		})
	}
}

func TestWallClockInstant_JSON(t *testing.T) {
	var payload struct {
		TargetTime WallClockInstant `json:"targetTime"`
	}

	err := json.Unmarshal([]byte(`{"targetTime":"2025-10-27T20:00:00"}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-27T20:00:00", payload.TargetTime.String())
	assert.Equal(t, time.Monday, payload.TargetTime.Weekday())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"targetTime":"2025-10-27T20:00:00"}`, string(out))

	err = json.Unmarshal([]byte(`{"targetTime":"2025-10-27T20:00:00.000Z"}`), &payload)
	assert.ErrorIs(t, err, ErrMalformedInstant)

	err = json.Unmarshal([]byte(`{"targetTime":42}`), &payload)
	assert.ErrorIs(t, err, ErrMalformedInstant)
}

func TestNewWallClockInstantAt(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		clock string
		want  string
	}{
		{"same day", time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), "23:00", "2025-10-30T23:00:00"},
		{"past midnight rolls over", time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), "25:30", "2025-10-31T01:30:00"},
		{"month end rolls over", time.Date(2025, 10, 31, 3, 0, 0, 0, time.UTC), "24:15", "2025-11-01T00:15:00"},
		{"date is read in the civil zone", time.Date(2025, 10, 30, 20, 0, 0, 0, time.UTC), "22:00", "2025-10-31T22:00:00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := NewWallClockInstantAt(test.date, test.clock)

			require.NoError(t, err)
			assert.Equal(t, test.want, got.String())
		})
	}

	for _, clock := range []string{"2300", "ab:00", "23:60", "23:-1", "-1:00"} {
		t.Run("invalid "+clock, func(t *testing.T) {
			_, err := NewWallClockInstantAt(time.Now(), clock)
			assert.ErrorIs(t, err, ErrMalformedInstant)
		})
	}
}

func TestWeeklyMinutesOfPoint(t *testing.T) {
	assert.Equal(t, 3540, WeeklyMinutesOfPoint(place.TimePoint{Day: 2, Hour: 11, Minute: 0}))
	assert.Equal(t, 0, WeeklyMinutesOfPoint(place.TimePoint{}))
	assert.Equal(t, MinutesPerWeek-1, WeeklyMinutesOfPoint(place.TimePoint{Day: 6, Hour: 23, Minute: 59}))
}

func TestAdjustedCloseMinutes(t *testing.T) {
	tests := []struct {
		name        string
		openMinutes int
		closePoint  place.TimePoint
		want        int
	}{
		{"same day", 2520, place.TimePoint{Day: 1, Hour: 23}, 2820},
		{"overnight within the week", 2850, place.TimePoint{Day: 2, Hour: 5}, 3180},
		{"saturday into sunday wraps", 9960, place.TimePoint{Day: 0, Hour: 5}, 300 + MinutesPerWeek},
		{"same point wraps a full week", 2520, place.TimePoint{Day: 1, Hour: 18}, 2520 + MinutesPerWeek},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, AdjustedCloseMinutes(test.openMinutes, test.closePoint))
		})
	}
}

func TestAdjustedCloseMinutes_AlwaysAfterOpen(t *testing.T) {
	for openDay := 0; openDay < 7; openDay++ {
		for openHour := 0; openHour < 24; openHour += 3 {
			open := WeeklyMinutesOfPoint(place.TimePoint{Day: openDay, Hour: openHour})
			for closeDay := 0; closeDay < 7; closeDay++ {
				for closeHour := 0; closeHour < 24; closeHour += 3 {
					closePoint := place.TimePoint{Day: closeDay, Hour: closeHour}
					adjusted := AdjustedCloseMinutes(open, closePoint)
					if adjusted <= open {
						t.Fatalf("open=%d close=%+v adjusted=%d is not after open", open, closePoint, adjusted)
					}
				}
			}
		}
	}
}
