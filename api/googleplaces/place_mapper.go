package googleplaces

import (
	"yonayona-server/models/google_places"
	"yonayona-server/models/place"
)

// MapGooglePlaces maps every raw place, keeping order.
func MapGooglePlaces(raw []google_places.GooglePlace) []place.Place {
	places := make([]place.Place, 0, len(raw))
	for _, r := range raw {
		places = append(places, MapGooglePlace(r))
	}
	return places
}

// MapGooglePlace converts an upstream place into the domain type. Missing
// scalars become zero values, missing hours stay nil.
func MapGooglePlace(raw google_places.GooglePlace) place.Place {
	p := place.Place{
		ID:                  stringOrEmpty(raw.ID),
		FormattedAddress:    stringOrEmpty(raw.FormattedAddress),
		CurrentOpeningHours: MapGoogleOpeningHours(raw.CurrentOpeningHours),
		Rating:              raw.Rating,
	}
	if raw.DisplayName != nil {
		p.DisplayName = stringOrEmpty(raw.DisplayName.Text)
	}
	if raw.Location != nil {
		p.Location = place.LatLng{
			Lat: floatOrZero(raw.Location.Latitude),
			Lng: floatOrZero(raw.Location.Longitude),
		}
	}
	return p
}

// MapGoogleOpeningHours returns nil when the upstream sent no hours at all.
// Periods with a day, hour or minute out of range are dropped.
func MapGoogleOpeningHours(raw *google_places.GoogleOpeningHours) *place.OpeningHours {
	if raw == nil {
		return nil
	}

	hours := &place.OpeningHours{
		Periods:             make([]place.OpeningPeriod, 0, len(raw.Periods)),
		WeekdayDescriptions: []string{},
	}
	if raw.OpenNow != nil {
		hours.OpenNow = *raw.OpenNow
	}
	for _, period := range raw.Periods {
		mapped := place.OpeningPeriod{
			Open:  MapGoogleOpeningTime(period.Open),
			Close: MapGoogleOpeningTime(period.Close),
		}
		// out-of-range points would break weekly-minute arithmetic
		if !mapped.Open.IsValid() || !mapped.Close.IsValid() {
			continue
		}
		hours.Periods = append(hours.Periods, mapped)
	}
	if raw.WeekdayDescriptions != nil {
		hours.WeekdayDescriptions = append(hours.WeekdayDescriptions, raw.WeekdayDescriptions...)
	}
	return hours
}

// MapGoogleOpeningTime maps a missing point to Sunday 00:00. Upstream omits
// the close point for places open around the clock, and a close equal to
// the open reads as a full week.
func MapGoogleOpeningTime(raw *google_places.GoogleOpeningTime) place.TimePoint {
	if raw == nil {
		return place.TimePoint{}
	}
	return place.TimePoint{
		Day:    intOrZero(raw.Day),
		Hour:   intOrZero(raw.Hour),
		Minute: intOrZero(raw.Minute),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
