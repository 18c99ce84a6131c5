package openinghours

import "yonayona-server/models/place"

// FilterOpenPlaces returns, in input order, the places with known hours
// that are open at target. The input slice is not modified.
func FilterOpenPlaces(places []place.Place, target WallClockInstant) []place.Place {
	open := make([]place.Place, 0, len(places))
	for _, p := range places {
		if p.CurrentOpeningHours == nil {
			continue
		}
		if IsOpenAt(p.CurrentOpeningHours, target) {
			open = append(open, p)
		}
	}
	return open
}
