package place

import "fmt"

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Lat float64 `json:"lat" validate:"finite,gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"finite,gte=-180,lte=180"`
}

// Place is a restaurant or bar as reported by the upstream places provider.
type Place struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	Location         LatLng `json:"location"`
	FormattedAddress string `json:"formattedAddress"`

	// Nil means the provider has no hours for this place.
	CurrentOpeningHours *OpeningHours `json:"currentOpeningHours,omitempty"`
	Rating              *float64      `json:"rating,omitempty"`
}

// IsValid reports whether the place carries an identity and a name.
func (p *Place) IsValid() bool {
	return p.ID != "" && p.DisplayName != ""
}

func (p *Place) ToString() string {
	return fmt.Sprintf("Place(name=%s, address=%s, lat=%f, lng=%f)",
		p.DisplayName, p.FormattedAddress, p.Location.Lat, p.Location.Lng)
}
