package googleplaces

import (
	"context"

	"github.com/rs/zerolog/log"

	"yonayona-server/models"
	"yonayona-server/models/place"
	"yonayona-server/util"
)

// GooglePlacesApiClientMock serves a recorded searchNearby answer from disk.
type GooglePlacesApiClientMock struct {
	fixturePath string
}

// NewGooglePlacesApiClientMock creates a mock reading fixturePath on every call.
func NewGooglePlacesApiClientMock(fixturePath string) *GooglePlacesApiClientMock {
	return &GooglePlacesApiClientMock{fixturePath: fixturePath}
}

// SearchNearby returns the fixture's places regardless of the query.
func (c *GooglePlacesApiClientMock) SearchNearby(ctx context.Context, q models.NearbyQuery) ([]place.Place, error) {
	response, err := util.ReadSearchNearbyResponseFromJSON(c.fixturePath)
	if err != nil {
		log.Error().Str("component", "GooglePlacesApiClientMock").Err(err).Msg("could not read search nearby fixture")
		return nil, models.NewPlacesAPIError(models.ServiceUnavailable, err.Error())
	}
	return MapGooglePlaces(response.Places), nil
}
