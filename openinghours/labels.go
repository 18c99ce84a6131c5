package openinghours

import (
	"fmt"
	"strings"
)

// Labels is the fixed text catalog used when rendering hours and status.
type Labels struct {
	Closed          string
	ClosingSoon     string
	NoHoursInfo     string
	ClosedToday     string
	RangeSeparator  string
	PeriodSeparator string

	// RemainingText renders a positive number of minutes left before closing.
	RemainingText func(hours, minutes int) string
	// NextDayClose renders a close time on the day after the open.
	NextDayClose func(hour, minute int) string

	// Notices shown when a search had to be relaxed.
	RadiusWidened string
	TimeAdjusted  func(clock string) string
	NothingFound  string

	// WeekdayNames is indexed by day, Sunday first.
	WeekdayNames [7]string
	// WeekdayPrefixes lists, per day, the prefixes that identify that day's
	// line in the provider's free-text descriptions, in preference order.
	WeekdayPrefixes [7][]string
}

var japaneseWeekdays = [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}
var japaneseShortWeekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}
var englishWeekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var englishShortWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// weekdayPrefixes is shared by both catalogs: the provider localizes its
// descriptions independently of how we render our own text.
var weekdayPrefixes = buildWeekdayPrefixes()

func buildWeekdayPrefixes() [7][]string {
	var out [7][]string
	for day := 0; day < 7; day++ {
		out[day] = []string{
			japaneseWeekdays[day],
			japaneseShortWeekdays[day] + "曜",
			englishWeekdays[day],
			englishShortWeekdays[day],
		}
	}
	return out
}

// JapaneseLabels is the default catalog.
var JapaneseLabels = Labels{
	Closed:          "閉店中",
	ClosingSoon:     "営業中（まもなく閉店）",
	NoHoursInfo:     "営業時間情報なし",
	ClosedToday:     "定休日",
	RangeSeparator:  "～",
	PeriodSeparator: " / ",
	RemainingText: func(hours, minutes int) string {
		switch {
		case hours > 0 && minutes > 0:
			return fmt.Sprintf("営業中（あと%d時間%d分）", hours, minutes)
		case hours > 0:
			return fmt.Sprintf("営業中（あと%d時間）", hours)
		default:
			return fmt.Sprintf("営業中（あと%d分）", minutes)
		}
	},
	NextDayClose: func(hour, minute int) string {
		return fmt.Sprintf("翌%d:%02d", hour, minute)
	},
	RadiusWidened: "検索範囲を広げました",
	TimeAdjusted: func(clock string) string {
		return fmt.Sprintf("時間帯を調整しました（%s）", clock)
	},
	NothingFound:    "近くに営業中の店舗が見つかりませんでした",
	WeekdayNames:    japaneseWeekdays,
	WeekdayPrefixes: weekdayPrefixes,
}

// EnglishLabels renders the same information in English.
var EnglishLabels = Labels{
	Closed:          "closed",
	ClosingSoon:     "open, closing imminently",
	NoHoursInfo:     "no hours information",
	ClosedToday:     "closed today",
	RangeSeparator:  "～",
	PeriodSeparator: " / ",
	RemainingText: func(hours, minutes int) string {
		parts := make([]string, 0, 2)
		if hours > 0 {
			parts = append(parts, plural(hours, "hour"))
		}
		if minutes > 0 || hours == 0 {
			parts = append(parts, plural(minutes, "minute"))
		}
		return "open, " + strings.Join(parts, " ") + " left"
	},
	NextDayClose: func(hour, minute int) string {
		return fmt.Sprintf("next day %d:%02d", hour, minute)
	},
	RadiusWidened: "search radius widened",
	TimeAdjusted: func(clock string) string {
		return fmt.Sprintf("time adjusted to %s", clock)
	},
	NothingFound:    "no open places found nearby",
	WeekdayNames:    englishWeekdays,
	WeekdayPrefixes: weekdayPrefixes,
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// LabelsFor returns the catalog for a locale code, defaulting to Japanese.
func LabelsFor(locale string) Labels {
	switch strings.ToLower(locale) {
	case "en", "en-us", "en-gb":
		return EnglishLabels
	default:
		return JapaneseLabels
	}
}
