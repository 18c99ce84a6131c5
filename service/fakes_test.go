package services

import (
	"context"
	"sync"

	"yonayona-server/models"
	"yonayona-server/models/place"
)

// fakePlacesAPI answers every query with the same places, or err.
type fakePlacesAPI struct {
	mu     sync.Mutex
	places []place.Place
	err    error
	calls  []models.NearbyQuery
}

func (f *fakePlacesAPI) SearchNearby(ctx context.Context, q models.NearbyQuery) ([]place.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

func (f *fakePlacesAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func tp(day, hour, minute int) place.TimePoint {
	return place.TimePoint{Day: day, Hour: hour, Minute: minute}
}

func dailyPeriods(openHour, openMinute, closeHour, closeMinute int, overnight bool) []place.OpeningPeriod {
	periods := make([]place.OpeningPeriod, 0, 7)
	for day := 0; day < 7; day++ {
		closeDay := day
		if overnight {
			closeDay = (day + 1) % 7
		}
		periods = append(periods, place.OpeningPeriod{
			Open:  tp(day, openHour, openMinute),
			Close: tp(closeDay, closeHour, closeMinute),
		})
	}
	return periods
}

// samplePlaces is an overnight bar, a dinner izakaya, a day cafe and a
// stall without hours, all around Shinjuku.
func samplePlaces() []place.Place {
	return []place.Place{
		{
			ID:               "bar",
			DisplayName:      "Night Bar",
			FormattedAddress: "日本、東京都新宿区歌舞伎町",
			Location:         place.LatLng{Lat: 35.6942, Lng: 139.7046},
			CurrentOpeningHours: &place.OpeningHours{
				Periods: dailyPeriods(20, 0, 5, 0, true),
			},
		},
		{
			ID:          "izakaya",
			DisplayName: "Izakaya",
			Location:    place.LatLng{Lat: 35.6915, Lng: 139.6982},
			CurrentOpeningHours: &place.OpeningHours{
				Periods: dailyPeriods(17, 0, 23, 30, false),
			},
		},
		{
			ID:          "cafe",
			DisplayName: "Cafe",
			Location:    place.LatLng{Lat: 35.6917, Lng: 139.7045},
			CurrentOpeningHours: &place.OpeningHours{
				Periods: dailyPeriods(8, 0, 18, 0, false),
			},
		},
		{
			ID:          "stall",
			DisplayName: "Stall",
			Location:    place.LatLng{Lat: 35.6932, Lng: 139.7068},
		},
	}
}
