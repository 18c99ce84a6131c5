package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"yonayona-server/api/googleplaces"
	"yonayona-server/dao/redis"
	"yonayona-server/models"
	"yonayona-server/models/place"
	"yonayona-server/openinghours"
	"yonayona-server/telemetry"
	"yonayona-server/util"
)

const placeServiceComponent = "PlaceService"

// PlaceService answers nearby searches: it fetches raw places (cache first,
// then upstream, then the geo index as a last resort) and projects the ones
// open at the requested time.
type PlaceService struct {
	placeDao  *redis.RedisPlaceDAO
	placesApi googleplaces.PlacesAPI
	formatter *openinghours.Formatter
	cacheTTL  time.Duration
}

// NewPlaceService constructs a new PlaceService. A zero cacheTTL disables
// the upstream result cache.
func NewPlaceService(
	placeDao *redis.RedisPlaceDAO,
	placesApi googleplaces.PlacesAPI,
	formatter *openinghours.Formatter,
	cacheTTL time.Duration) *PlaceService {

	return &PlaceService{
		placeDao:  placeDao,
		placesApi: placesApi,
		formatter: formatter,
		cacheTTL:  cacheTTL,
	}
}

// SearchNearby returns the places around req.Location that are open at
// req.TargetTime, in upstream order. Errors are *models.PlacesAPIError.
func (ps *PlaceService) SearchNearby(ctx context.Context, req models.SearchNearbyRequest) (*models.DisplayPlacesResponse, error) {
	if apiErr := ValidateSearchNearbyRequest(req); apiErr != nil {
		telemetry.SearchRequestsTotal.WithLabelValues(telemetry.OutcomeInvalid).Inc()
		return nil, apiErr
	}

	places, err := ps.fetchPlaces(ctx, req.Query())
	if err != nil {
		telemetry.SearchRequestsTotal.WithLabelValues(telemetry.OutcomeError).Inc()
		return nil, err
	}

	openPlaces := openinghours.FilterOpenPlaces(places, req.TargetTime)
	display := make([]place.DisplayPlace, 0, len(openPlaces))
	for _, p := range openPlaces {
		display = append(display, ps.formatter.ToDisplayPlace(p, req.TargetTime))
	}

	outcome := telemetry.OutcomeSuccess
	if len(display) == 0 {
		outcome = telemetry.OutcomeEmpty
	}
	telemetry.SearchRequestsTotal.WithLabelValues(outcome).Inc()
	telemetry.SearchOpenPlaces.Observe(float64(len(display)))

	log.Info().Str("component", placeServiceComponent).
		Float64("lat", req.Location.Lat).
		Float64("lng", req.Location.Lng).
		Float64("radius", req.Radius).
		Str("targetTime", req.TargetTime.String()).
		Int("candidates", len(places)).
		Int("open", len(display)).
		Msg("search finished")

	return &models.DisplayPlacesResponse{Places: display}, nil
}

func (ps *PlaceService) fetchPlaces(ctx context.Context, q models.NearbyQuery) ([]place.Place, error) {
	if ps.cacheTTL > 0 {
		cached, ok, err := ps.placeDao.GetSearchResult(q)
		switch {
		case err != nil:
			telemetry.UpstreamCacheTotal.WithLabelValues(telemetry.CacheError).Inc()
			log.Warn().Str("component", placeServiceComponent).Err(err).Msg("search cache read failed")
		case ok:
			telemetry.UpstreamCacheTotal.WithLabelValues(telemetry.CacheHit).Inc()
			return cached, nil
		default:
			telemetry.UpstreamCacheTotal.WithLabelValues(telemetry.CacheMiss).Inc()
		}
	}

	places, err := ps.placesApi.SearchNearby(ctx, q)
	if err != nil {
		apiErr, ok := models.AsPlacesAPIError(err)
		if !ok {
			apiErr = models.NewPlacesAPIError(models.ServiceUnavailable, err.Error())
		}
		if fallback := ps.geoFallback(q, apiErr); fallback != nil {
			return fallback, nil
		}
		return nil, apiErr
	}

	ps.remember(q, places)
	return places, nil
}

// geoFallback serves previously indexed places when upstream is down.
// It returns nil when the error is not transient or the index has nothing.
func (ps *PlaceService) geoFallback(q models.NearbyQuery, apiErr *models.PlacesAPIError) []place.Place {
	if apiErr.Type != models.NetworkError && apiErr.Type != models.ServiceUnavailable {
		return nil
	}
	indexed, err := ps.placeDao.GetNearbyPlaces(q.Location.Lat, q.Location.Lng, q.Radius)
	if err != nil || len(indexed) == 0 {
		return nil
	}
	telemetry.UpstreamCacheTotal.WithLabelValues(telemetry.CacheFallback).Inc()
	log.Warn().Str("component", placeServiceComponent).
		Str("type", string(apiErr.Type)).
		Int("places", len(indexed)).
		Msg("upstream unavailable, serving places from geo index")
	return indexed
}

func (ps *PlaceService) remember(q models.NearbyQuery, places []place.Place) {
	if ps.cacheTTL > 0 {
		if err := ps.placeDao.SetSearchResult(q, places, ps.cacheTTL); err != nil {
			log.Warn().Str("component", placeServiceComponent).Err(err).Msg("search cache write failed")
		}
	}
	for _, p := range places {
		if !p.IsValid() {
			log.Debug().Str("component", placeServiceComponent).Str("place", p.ToString()).Msg("skipping place without identity")
			continue
		}
		if err := ps.placeDao.UpsertPlace(p); err != nil {
			log.Warn().Str("component", placeServiceComponent).Str("place", p.ID).Err(err).Msg("geo index write failed")
		}
	}
}

// ValidateSearchNearbyRequest checks coordinates, radius and target time
// and reports the first failure.
func ValidateSearchNearbyRequest(req models.SearchNearbyRequest) *models.PlacesAPIError {
	err := util.ValidateStruct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return models.NewPlacesAPIError(models.InvalidRequest, err.Error())
	}
	return models.NewPlacesAPIError(models.InvalidRequest, validationMessage(validationErrors[0]))
}

// validationMessages is keyed by struct field, then by whether the failing
// tag was the finiteness check.
var validationMessages = map[string][2]string{
	"Lat":    {"Latitude must be between -90 and 90.", "Latitude must be a finite number."},
	"Lng":    {"Longitude must be between -180 and 180.", "Longitude must be a finite number."},
	"Radius": {"Radius must be between 1 and 50000 meters.", "Radius must be a finite number."},
}

func validationMessage(fe validator.FieldError) string {
	if fe.StructField() == "TargetTime" {
		return "targetTime is required."
	}
	messages, ok := validationMessages[fe.StructField()]
	if !ok {
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
	if fe.Tag() == "finite" {
		return messages[1]
	}
	return messages[0]
}
