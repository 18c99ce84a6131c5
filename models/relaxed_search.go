package models

import "yonayona-server/models/place"

// RelaxedSearchRequest is the body of POST /api/places/search/relaxed.
// Date is YYYY-MM-DD and defaults to today in Asia/Tokyo; Time is HH:mm
// and may exceed 24 hours ("25:30") to mean after midnight.
type RelaxedSearchRequest struct {
	Location place.LatLng `json:"location"`
	Date     string       `json:"date,omitempty"`
	Time     string       `json:"time,omitempty"`
}

// RelaxedSearchResponse carries the places from the first step that found
// any, plus a notice when the search had to be relaxed.
type RelaxedSearchResponse struct {
	Places     []place.DisplayPlace `json:"places"`
	Message    string               `json:"message,omitempty"`
	Radius     float64              `json:"radius"`
	TargetTime string               `json:"targetTime"`
}
