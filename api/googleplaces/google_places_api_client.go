package googleplaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"yonayona-server/api"
	"yonayona-server/models"
	"yonayona-server/models/google_places"
	"yonayona-server/models/place"
)

const SEARCH_NEARBY_ENDPOINT = "/v1/places:searchNearby"
const MAX_RESULT_COUNT = 20

const (
	API_KEY_HEADER    = "X-Goog-Api-Key"
	FIELD_MASK_HEADER = "X-Goog-FieldMask"
)

var INCLUDED_TYPES = []string{"restaurant", "cafe", "bar"}

var FIELD_MASK = strings.Join([]string{
	"places.id",
	"places.displayName",
	"places.location",
	"places.currentOpeningHours",
	"places.formattedAddress",
	"places.rating",
}, ",")

const clientComponent = "GooglePlacesApiClient"

// GooglePlacesApiClient embeds the common HTTPClient
type GooglePlacesApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewGooglePlacesApiClient creates a client for the Places API (New).
func NewGooglePlacesApiClient(httpClient *api.HTTPClient, apiKey string) *GooglePlacesApiClient {
	return &GooglePlacesApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}
}

// SetCredentials replaces the API key used for subsequent calls.
func (c *GooglePlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// SearchNearby asks for up to MAX_RESULT_COUNT restaurants, cafes and bars
// inside the circle described by q.
func (c *GooglePlacesApiClient) SearchNearby(ctx context.Context, q models.NearbyQuery) ([]place.Place, error) {
	lat, lng := q.Location.Lat, q.Location.Lng
	body := google_places.SearchNearbyRequest{
		IncludedTypes:  INCLUDED_TYPES,
		MaxResultCount: MAX_RESULT_COUNT,
		LocationRestriction: google_places.LocationRestriction{
			Circle: google_places.Circle{
				Center: google_places.GoogleLatLng{Latitude: &lat, Longitude: &lng},
				Radius: q.Radius,
			},
		},
	}
	headers := map[string]string{
		API_KEY_HEADER:    c.apiKey,
		FIELD_MASK_HEADER: FIELD_MASK,
	}

	var response google_places.SearchNearbyResponse
	if err := c.Request(ctx, "POST", SEARCH_NEARBY_ENDPOINT, headers, body, &response); err != nil {
		apiErr := toPlacesAPIError(err)
		log.Warn().Str("component", clientComponent).
			Str("type", string(apiErr.Type)).
			Err(err).
			Msg("searchNearby failed")
		return nil, apiErr
	}

	places := MapGooglePlaces(response.Places)
	log.Debug().Str("component", clientComponent).
		Int("places", len(places)).
		Float64("radius", q.Radius).
		Msg("searchNearby succeeded")
	return places, nil
}

func toPlacesAPIError(err error) *models.PlacesAPIError {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return models.NewPlacesAPIError(models.ErrorTypeForStatus(httpErr.StatusCode), extractErrorMessage(httpErr))
	}
	if errors.Is(err, api.ErrDecodeResponse) {
		return models.NewPlacesAPIError(models.ServiceUnavailable, err.Error())
	}
	return models.NewPlacesAPIError(models.NetworkError, err.Error())
}

// extractErrorMessage prefers the message from the upstream error body.
func extractErrorMessage(httpErr *api.HTTPError) string {
	var body google_places.ErrorResponse
	if err := json.Unmarshal(httpErr.Body, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return fmt.Sprintf("Places API request failed with status %d", httpErr.StatusCode)
}
