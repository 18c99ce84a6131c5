package openinghours

import (
	"regexp"
	"strings"

	"yonayona-server/models/place"
)

// countryPrefixPattern matches a redundant leading country token such as
// "日本、" or "Japan, ".
var countryPrefixPattern = regexp.MustCompile(`^(?:日本|Japan)[\s　]*[、,]\s*`)

// ToDisplayPlace projects p onto target with the default catalog.
func ToDisplayPlace(p place.Place, target WallClockInstant) place.DisplayPlace {
	return defaultFormatter.ToDisplayPlace(p, target)
}

// ToDisplayPlace derives the status and today's hours of p at target.
// p is read only; the returned value shares its CurrentOpeningHours pointer.
func (f *Formatter) ToDisplayPlace(p place.Place, target WallClockInstant) place.DisplayPlace {
	isOpenNow := IsOpenAt(p.CurrentOpeningHours, target)
	safeRemaining := 0
	if isOpenNow {
		if minutes, ok := RemainingMinutes(*p.CurrentOpeningHours, target); ok {
			safeRemaining = minutes
		}
	}

	return place.DisplayPlace{
		ID:                  p.ID,
		DisplayName:         p.DisplayName,
		Location:            p.Location,
		FormattedAddress:    SanitizeFormattedAddress(p.FormattedAddress),
		CurrentOpeningHours: p.CurrentOpeningHours,
		Rating:              p.Rating,
		BusinessStatus: place.BusinessStatus{
			IsOpenNow:        isOpenNow,
			RemainingMinutes: safeRemaining,
			StatusText:       f.FormatBusinessStatus(isOpenNow, safeRemaining),
		},
		OpeningHoursDisplay: f.FormatOpeningHours(p.CurrentOpeningHours, target),
	}
}

// ToFilteredPlace annotates p with its remaining minutes at target,
// 0 when closed or when hours are unknown.
func ToFilteredPlace(p place.Place, target WallClockInstant) place.FilteredPlace {
	remaining := 0
	if p.CurrentOpeningHours != nil {
		if minutes, ok := RemainingMinutes(*p.CurrentOpeningHours, target); ok {
			remaining = minutes
		}
	}
	return place.FilteredPlace{Place: p, RemainingMinutes: remaining}
}

// SanitizeFormattedAddress removes a leading country token. An address that
// would become empty is returned trimmed instead.
func SanitizeFormattedAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	normalized := countryPrefixPattern.ReplaceAllString(trimmed, "")
	if normalized == "" {
		return trimmed
	}
	return normalized
}
