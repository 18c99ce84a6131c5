package openinghours

import "yonayona-server/models/place"

// RemainingMinutes returns the minutes left until the first period
// containing target closes. ok is false when no period contains target.
func RemainingMinutes(hours place.OpeningHours, target WallClockInstant) (minutes int, ok bool) {
	if len(hours.Periods) == 0 {
		return 0, false
	}

	currentMinutes := WeeklyMinutesOfInstant(target)
	shiftedMinutes := currentMinutes + MinutesPerWeek

	for _, period := range hours.Periods {
		r := toPeriodRange(period)
		if r.contains(currentMinutes) {
			return r.close - currentMinutes, true
		}
		if r.contains(shiftedMinutes) {
			return r.close - shiftedMinutes, true
		}
	}
	return 0, false
}
