package models

import (
	"yonayona-server/models/place"
	"yonayona-server/openinghours"
)

// SearchNearbyRequest is the body of POST /api/places/search.
type SearchNearbyRequest struct {
	Location   place.LatLng                  `json:"location"`
	Radius     float64                       `json:"radius" validate:"finite,gte=1,lte=50000"`
	TargetTime openinghours.WallClockInstant `json:"targetTime" validate:"required"`
}

// Query drops the target time; upstream results do not depend on it.
func (r SearchNearbyRequest) Query() NearbyQuery {
	return NearbyQuery{Location: r.Location, Radius: r.Radius}
}

// NearbyQuery is what the upstream places API and the cache are keyed on.
type NearbyQuery struct {
	Location place.LatLng
	Radius   float64
}
