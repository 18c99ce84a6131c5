package openinghours

import "yonayona-server/models/place"

const (
	MinutesPerDay  = 24 * 60
	MinutesPerWeek = 7 * MinutesPerDay
)

// WeeklyMinutesOfInstant returns the minutes elapsed since Sunday 00:00
// in the fixed zone.
func WeeklyMinutesOfInstant(instant WallClockInstant) int {
	t := instant.wall
	return int(t.Weekday())*MinutesPerDay + t.Hour()*60 + t.Minute()
}

// WeeklyMinutesOfString parses s and returns its weekly minutes.
func WeeklyMinutesOfString(s string) (int, error) {
	instant, err := ParseWallClockInstant(s)
	if err != nil {
		return 0, err
	}
	return WeeklyMinutesOfInstant(instant), nil
}

// WeeklyMinutesOfPoint returns the minutes elapsed since Sunday 00:00.
func WeeklyMinutesOfPoint(p place.TimePoint) int {
	return p.Day*MinutesPerDay + p.Hour*60 + p.Minute
}

// AdjustedCloseMinutes returns the closing minute of a period opening at
// openMinutes. A close at or before the open wraps into the next week, so
// the result is always strictly greater than openMinutes.
func AdjustedCloseMinutes(openMinutes int, closePoint place.TimePoint) int {
	closeMinutes := WeeklyMinutesOfPoint(closePoint)
	if closeMinutes <= openMinutes {
		return closeMinutes + MinutesPerWeek
	}
	return closeMinutes
}

// periodRange is a period projected onto the weekly timeline as [open, close).
type periodRange struct {
	open, close int
}

func toPeriodRange(p place.OpeningPeriod) periodRange {
	open := WeeklyMinutesOfPoint(p.Open)
	return periodRange{open: open, close: AdjustedCloseMinutes(open, p.Close)}
}

func (r periodRange) contains(minutes int) bool {
	return isWithinRange(minutes, r.open, r.close)
}

// isWithinRange is a half-open [start, end) test.
func isWithinRange(value, start, end int) bool {
	return value >= start && value < end
}
