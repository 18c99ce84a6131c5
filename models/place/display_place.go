package place

// BusinessStatus is the open/closed state of a place at a target instant.
type BusinessStatus struct {
	IsOpenNow        bool   `json:"isOpenNow"`
	RemainingMinutes int    `json:"remainingMinutes"`
	StatusText       string `json:"statusText"`
}

// OpeningHoursDisplay holds the rendered hours for the target day.
type OpeningHoursDisplay struct {
	TodayHours string `json:"todayHours"`
}

// DisplayPlace is a Place plus the fields derived for one target instant.
// It is rebuilt for every request and never stored.
type DisplayPlace struct {
	ID                  string              `json:"id"`
	DisplayName         string              `json:"displayName"`
	Location            LatLng              `json:"location"`
	FormattedAddress    string              `json:"formattedAddress"`
	CurrentOpeningHours *OpeningHours       `json:"currentOpeningHours,omitempty"`
	Rating              *float64            `json:"rating,omitempty"`
	BusinessStatus      BusinessStatus      `json:"businessStatus"`
	OpeningHoursDisplay OpeningHoursDisplay `json:"openingHoursDisplay"`
}

// FilteredPlace is a Place annotated with the minutes left before it closes.
type FilteredPlace struct {
	Place
	RemainingMinutes int `json:"remainingMinutes"`
}
