package place

// TimePoint is a recurring point within a week.
// Day is 0 for Sunday through 6 for Saturday.
type TimePoint struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// IsValid reports whether every field is within its calendar range.
func (t TimePoint) IsValid() bool {
	return t.Day >= 0 && t.Day <= 6 &&
		t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59
}

// OpeningPeriod is one contiguous open interval. It may cross midnight
// and the Saturday/Sunday week boundary.
type OpeningPeriod struct {
	Open  TimePoint `json:"open"`
	Close TimePoint `json:"close"`
}

// OpeningHours groups the structured periods of a place with the provider's
// free-text weekday lines.
type OpeningHours struct {
	// OpenNow is the provider's own flag. It is informational only.
	OpenNow             bool            `json:"openNow"`
	Periods             []OpeningPeriod `json:"periods"`
	WeekdayDescriptions []string        `json:"weekdayDescriptions"`
}
