package googleplaces

import (
	"context"

	"yonayona-server/models"
	"yonayona-server/models/place"
)

// PlacesAPI is the upstream source of nearby places.
type PlacesAPI interface {
	// SearchNearby returns the places around q. Failures are reported as
	// *models.PlacesAPIError.
	SearchNearby(ctx context.Context, q models.NearbyQuery) ([]place.Place, error)
}
