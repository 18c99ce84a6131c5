package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yonayona-server/models/place"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSearchNearbyResponseFromJSON_Success(t *testing.T) {
	// Arrange
	content := `{
		"places": [
			{
				"id": "p-1",
				"displayName": {"text": "Test Bar"},
				"currentOpeningHours": {
					"periods": [{"open": {"day": 1, "hour": 18}, "close": {"day": 2, "hour": 2}}]
				}
			},
			{"id": "p-2"}
		]
	}`
	path := createTempFile(t, content)

	// Act
	response, err := ReadSearchNearbyResponseFromJSON(path)

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Places, 2)
	assert.Equal(t, "p-1", *response.Places[0].ID)
	assert.Equal(t, "Test Bar", *response.Places[0].DisplayName.Text)
	require.Len(t, response.Places[0].CurrentOpeningHours.Periods, 1)
	assert.Nil(t, response.Places[0].CurrentOpeningHours.Periods[0].Open.Minute)
	assert.Nil(t, response.Places[1].CurrentOpeningHours)
}

func TestReadSearchNearbyResponseFromJSON_Fixture(t *testing.T) {
	// Act
	response, err := ReadSearchNearbyResponseFromJSON("../resources/search_nearby_response.json")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, response.Places)
}

func TestReadSearchNearbyResponseFromJSON_MissingFile(t *testing.T) {
	_, err := ReadSearchNearbyResponseFromJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestReadSearchNearbyResponseFromJSON_InvalidJSON(t *testing.T) {
	path := createTempFile(t, `{"places": [`)

	_, err := ReadSearchNearbyResponseFromJSON(path)

	assert.ErrorContains(t, err, "failed to unmarshal SearchNearbyResponse")
}

func TestReadHotspotsFromJSON_Success(t *testing.T) {
	path := createTempFile(t, `[{"lat": 35.69, "lng": 139.70}, {"lat": 35.66, "lng": 139.70}]`)

	hotspots, err := ReadHotspotsFromJSON(path)

	require.NoError(t, err)
	assert.Equal(t, []place.LatLng{{Lat: 35.69, Lng: 139.70}, {Lat: 35.66, Lng: 139.70}}, hotspots)
}

func TestPrintDisplayPlaces(t *testing.T) {
	var buf bytes.Buffer
	places := []place.DisplayPlace{{
		DisplayName:         "バー",
		FormattedAddress:    "東京都新宿区",
		BusinessStatus:      place.BusinessStatus{IsOpenNow: true, RemainingMinutes: 45, StatusText: "営業中（あと45分）"},
		OpeningHoursDisplay: place.OpeningHoursDisplay{TodayHours: "20:00～翌5:00"},
	}}

	PrintDisplayPlaces(&buf, places)

	assert.Equal(t, "バー\t営業中（あと45分）\t20:00～翌5:00\t東京都新宿区\n", buf.String())
}

func TestPrintDisplayPlaces_Empty(t *testing.T) {
	var buf bytes.Buffer

	PrintDisplayPlaces(&buf, nil)

	assert.Equal(t, "No places found\n", buf.String())
}
