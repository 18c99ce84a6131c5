package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"yonayona-server/db"
	"yonayona-server/models"
	"yonayona-server/models/place"
)

const PLACES_GEO_KEY_V1 = "places_geo_v1"
const PLACES_GEO_PLACE_MEMBER_FORMAT_V1 = "places_geo_place_v1:%s"

// SEARCH_RESULT_KEY_FORMAT caches raw upstream places per query. Coordinates
// are rounded to 4 decimals (about 11 m) so nearby requests share an entry.
const SEARCH_RESULT_KEY_FORMAT = "places_search_v1:%.4f:%.4f:%.0f"

const daoComponent = "RedisPlaceDAO"

// RedisPlaceDAO handles place operations using Redis.
type RedisPlaceDAO struct {
	client db.RedisClient
}

// NewRedisPlaceDAO initializes a RedisPlaceDAO with the Redis client.
func NewRedisPlaceDAO(client db.RedisClient) *RedisPlaceDAO {
	return &RedisPlaceDAO{client: client}
}

// UpsertPlace stores the place as a geolocation with the place's JSON data.
func (dao *RedisPlaceDAO) UpsertPlace(p place.Place) error {
	if p.ID == "" {
		return fmt.Errorf("[%s] cannot index a place without id", daoComponent)
	}
	ctx := dao.client.GetContext()
	member := fmt.Sprintf(PLACES_GEO_PLACE_MEMBER_FORMAT_V1, p.ID)
	return dao.client.AddLocationWithJSON(ctx, PLACES_GEO_KEY_V1, member, p.Location.Lat, p.Location.Lng, p)
}

// UpsertPlaces indexes every place, stopping at the first failure.
func (dao *RedisPlaceDAO) UpsertPlaces(places []place.Place) error {
	for _, p := range places {
		if err := dao.UpsertPlace(p); err != nil {
			return fmt.Errorf("failed to upsert place %q: %w", p.ID, err)
		}
	}
	return nil
}

// GetNearbyPlaces retrieves indexed places within radiusMeters, nearest first.
func (dao *RedisPlaceDAO) GetNearbyPlaces(lat, lng, radiusMeters float64) ([]place.Place, error) {
	placesJSON, err := dao.client.GetLocationsWithinRadius(PLACES_GEO_KEY_V1, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("[%s] failed to get places: %w", daoComponent, err)
	}

	places := make([]place.Place, len(placesJSON))
	for i, placeJSON := range placesJSON {
		if err := json.Unmarshal([]byte(placeJSON), &places[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal place JSON: %w", err)
		}
	}
	log.Debug().Str("component", daoComponent).Int("places", len(places)).Msg("read nearby places from geo index")
	return places, nil
}

func searchResultKey(q models.NearbyQuery) string {
	return fmt.Sprintf(SEARCH_RESULT_KEY_FORMAT, q.Location.Lat, q.Location.Lng, q.Radius)
}

// SetSearchResult caches the upstream answer for q. Only raw places are
// stored; anything derived from a target time is recomputed per request.
func (dao *RedisPlaceDAO) SetSearchResult(q models.NearbyQuery, places []place.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}
	if err := dao.client.SetWithTTL(searchResultKey(q), string(data), ttl); err != nil {
		return fmt.Errorf("failed to set search result in redis: %w", err)
	}
	return nil
}

// GetSearchResult returns the cached upstream answer for q. A miss is
// (nil, false, nil).
func (dao *RedisPlaceDAO) GetSearchResult(q models.NearbyQuery) ([]place.Place, bool, error) {
	str, err := dao.client.Get(searchResultKey(q))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get search result from redis: %w", err)
	}

	var places []place.Place
	if err := json.Unmarshal([]byte(str), &places); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal search result JSON: %w", err)
	}
	return places, true, nil
}
