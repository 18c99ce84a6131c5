package models

import "yonayona-server/models/place"

type DisplayPlacesResponse struct {
	Places []place.DisplayPlace `json:"places"`
}

// ErrorResponse is the body written for every failed API call.
type ErrorResponse struct {
	Error *PlacesAPIError `json:"error"`
}
