package openinghours

import (
	"fmt"
	"strings"

	"yonayona-server/models/place"
)

// descriptionSeparators may follow a weekday prefix in a free-text line.
var descriptionSeparators = []string{":", "：", " "}

// FormatOpeningHours renders target's day with the default catalog.
func FormatOpeningHours(hours *place.OpeningHours, target WallClockInstant) place.OpeningHoursDisplay {
	return defaultFormatter.FormatOpeningHours(hours, target)
}

// FormatOpeningHours renders the periods that open on target's weekday,
// e.g. "18:00～翌2:00". When no period opens that day it falls back to the
// provider's free-text line for the weekday, then to the closed-today label.
func (f *Formatter) FormatOpeningHours(hours *place.OpeningHours, target WallClockInstant) place.OpeningHoursDisplay {
	if hours == nil {
		return place.OpeningHoursDisplay{TodayHours: f.Labels.NoHoursInfo}
	}

	targetDay := int(target.Weekday())
	var ranges []string
	for _, period := range hours.Periods {
		if period.Open.Day == targetDay {
			ranges = append(ranges, f.formatPeriodRange(period))
		}
	}
	if len(ranges) > 0 {
		return place.OpeningHoursDisplay{TodayHours: strings.Join(ranges, f.Labels.PeriodSeparator)}
	}

	if text, ok := f.todayHoursFromDescriptions(hours.WeekdayDescriptions, targetDay); ok {
		return place.OpeningHoursDisplay{TodayHours: text}
	}
	return place.OpeningHoursDisplay{TodayHours: f.Labels.ClosedToday}
}

func (f *Formatter) formatPeriodRange(period place.OpeningPeriod) string {
	return formatClock(period.Open.Hour, period.Open.Minute) +
		f.Labels.RangeSeparator +
		f.formatCloseLabel(period.Open.Day, period.Close)
}

// formatCloseLabel qualifies the close time with how many days after the
// open it falls.
func (f *Formatter) formatCloseLabel(openDay int, closePoint place.TimePoint) string {
	switch dayDiff := ((closePoint.Day-openDay)%7 + 7) % 7; dayDiff {
	case 0:
		return formatClock(closePoint.Hour, closePoint.Minute)
	case 1:
		return f.Labels.NextDayClose(closePoint.Hour, closePoint.Minute)
	default:
		return f.Labels.WeekdayNames[closePoint.Day] + " " + formatClock(closePoint.Hour, closePoint.Minute)
	}
}

// todayHoursFromDescriptions looks up day's line in the free-text
// descriptions. Prefixes are tried in catalog order; the first line
// matching a prefix wins.
func (f *Formatter) todayHoursFromDescriptions(descriptions []string, day int) (string, bool) {
	for _, prefix := range f.Labels.WeekdayPrefixes[day] {
		for _, line := range descriptions {
			rest, ok := cutDayPrefix(line, prefix)
			if !ok {
				continue
			}
			if rest == "" {
				return line, true
			}
			return rest, true
		}
	}
	return "", false
}

// cutDayPrefix strips prefix and the separator that must follow it.
// Full-width colons in the remainder become ASCII ones.
func cutDayPrefix(line, prefix string) (string, bool) {
	for _, sep := range descriptionSeparators {
		if rest, ok := strings.CutPrefix(line, prefix+sep); ok {
			return strings.TrimSpace(strings.ReplaceAll(rest, "：", ":")), true
		}
	}
	return "", false
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
