package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"yonayona-server/models/google_places"
	"yonayona-server/models/place"
)

// ReadSearchNearbyResponseFromJSON loads a recorded searchNearby answer from disk.
func ReadSearchNearbyResponseFromJSON(filePath string) (*google_places.SearchNearbyResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp google_places.SearchNearbyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchNearbyResponse: %w", err)
	}
	return &resp, nil
}

// ReadHotspotsFromJSON loads the locations the refresher keeps warm.
func ReadHotspotsFromJSON(filePath string) ([]place.LatLng, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var hotspots []place.LatLng
	if err := json.Unmarshal(data, &hotspots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspots: %w", err)
	}
	return hotspots, nil
}

// PrintDisplayPlaces writes one line per place: name, status and today's hours.
func PrintDisplayPlaces(w io.Writer, places []place.DisplayPlace) {
	if len(places) == 0 {
		fmt.Fprintln(w, "No places found")
		return
	}
	for _, p := range places {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.DisplayName,
			p.BusinessStatus.StatusText,
			p.OpeningHoursDisplay.TodayHours,
			p.FormattedAddress)
	}
}
