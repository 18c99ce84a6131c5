package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"yonayona-server/api/googleplaces"
	"yonayona-server/config"
	"yonayona-server/dao/redis"
	"yonayona-server/models"
	"yonayona-server/models/place"
)

const refresherComponent = "PlacesRefresherService"

// PlacesRefresherService periodically re-fetches busy late-night areas so
// their searches hit the cache and the geo index stays fresh for fallbacks.
type PlacesRefresherService struct {
	placeDao  *redis.RedisPlaceDAO
	placesApi googleplaces.PlacesAPI
	hotspots  []place.LatLng
	cacheTTL  time.Duration
}

// NewPlacesRefresherService constructs a new refresher with dependencies.
func NewPlacesRefresherService(
	placeDao *redis.RedisPlaceDAO,
	placesApi googleplaces.PlacesAPI,
	hotspots []place.LatLng,
	cacheTTL time.Duration,
) *PlacesRefresherService {
	return &PlacesRefresherService{
		placeDao:  placeDao,
		placesApi: placesApi,
		hotspots:  hotspots,
		cacheTTL:  cacheTTL,
	}
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop stops when ctx is done.
func (pr *PlacesRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go pr.startPeriodicJob(ctx, interval)
}

func (pr *PlacesRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("component", refresherComponent).Msg("periodic refresher stopped")
			return
		case <-ticker.C:
			refreshed := pr.RefreshPlaces(ctx)
			log.Info().Str("component", refresherComponent).Int("places", refreshed).Msg("periodic refresh completed")
		}
	}
}

// RefreshPlaces fetches every hotspot at both search radii, caches the
// answers and indexes the places. It returns how many unique places were
// indexed; failures are logged and skipped.
func (pr *PlacesRefresherService) RefreshPlaces(ctx context.Context) int {
	seen := make(map[string]struct{})
	radii := []float64{config.DEFAULT_SEARCH_RADIUS_METERS, config.RELAXED_SEARCH_RADIUS_METERS}

	for _, hotspot := range pr.hotspots {
		for _, radius := range radii {
			if ctx.Err() != nil {
				return len(seen)
			}
			q := models.NearbyQuery{Location: hotspot, Radius: radius}
			places, err := pr.placesApi.SearchNearby(ctx, q)
			if err != nil {
				log.Warn().Str("component", refresherComponent).
					Float64("lat", hotspot.Lat).
					Float64("lng", hotspot.Lng).
					Err(err).
					Msg("hotspot search failed")
				continue
			}

			if pr.cacheTTL > 0 {
				if err := pr.placeDao.SetSearchResult(q, places, pr.cacheTTL); err != nil {
					log.Warn().Str("component", refresherComponent).Err(err).Msg("search cache write failed")
				}
			}
			for _, p := range places {
				if _, dup := seen[p.ID]; dup || !p.IsValid() {
					continue
				}
				if err := pr.placeDao.UpsertPlace(p); err != nil {
					log.Warn().Str("component", refresherComponent).Str("place", p.ID).Err(err).Msg("upsert failed")
					continue
				}
				seen[p.ID] = struct{}{}
				log.Debug().Str("component", refresherComponent).Str("place", p.ToString()).Msg("place indexed")
			}
		}
	}
	return len(seen)
}
