package google_places

// SearchNearbyResponse is the body returned by places:searchNearby.
// Every field is optional upstream, hence the pointers.
type SearchNearbyResponse struct {
	Places []GooglePlace `json:"places"`
}

type GooglePlace struct {
	ID                  *string             `json:"id,omitempty"`
	DisplayName         *LocalizedText      `json:"displayName,omitempty"`
	FormattedAddress    *string             `json:"formattedAddress,omitempty"`
	Location            *GoogleLatLng       `json:"location,omitempty"`
	CurrentOpeningHours *GoogleOpeningHours `json:"currentOpeningHours,omitempty"`
	Rating              *float64            `json:"rating,omitempty"`
}

type LocalizedText struct {
	Text         *string `json:"text,omitempty"`
	LanguageCode string  `json:"languageCode,omitempty"`
}

type GoogleLatLng struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type GoogleOpeningHours struct {
	OpenNow             *bool                 `json:"openNow,omitempty"`
	Periods             []GoogleOpeningPeriod `json:"periods,omitempty"`
	WeekdayDescriptions []string              `json:"weekdayDescriptions,omitempty"`
}

type GoogleOpeningPeriod struct {
	Open  *GoogleOpeningTime `json:"open,omitempty"`
	Close *GoogleOpeningTime `json:"close,omitempty"`
}

type GoogleOpeningTime struct {
	Day    *int `json:"day,omitempty"`
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`
}
