package openinghours

import "yonayona-server/models/place"

// IsOpenAt reports whether target falls inside any period of hours.
// Unknown hours (nil) are treated as closed.
//
// The target is checked both as-is and shifted by one week, which catches
// periods whose adjusted close runs past the end of the week.
func IsOpenAt(hours *place.OpeningHours, target WallClockInstant) bool {
	if hours == nil {
		return false
	}

	targetMinutes := WeeklyMinutesOfInstant(target)
	shiftedTargetMinutes := targetMinutes + MinutesPerWeek

	for _, period := range hours.Periods {
		r := toPeriodRange(period)
		if r.contains(targetMinutes) || r.contains(shiftedTargetMinutes) {
			return true
		}
	}
	return false
}
