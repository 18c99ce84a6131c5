package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"yonayona-server/config"
	"yonayona-server/models"
	"yonayona-server/openinghours"
	"yonayona-server/telemetry"
)

const relaxingSearchComponent = "RelaxingSearchService"

const dateLayout = "2006-01-02"

// NearbySearcher is the single-shot search the relaxing search retries.
type NearbySearcher interface {
	SearchNearby(ctx context.Context, req models.SearchNearbyRequest) (*models.DisplayPlacesResponse, error)
}

// RelaxingSearchService widens a search that found nothing open:
// first the radius, then the time of day.
type RelaxingSearchService struct {
	searcher NearbySearcher
	labels   openinghours.Labels
	now      func() time.Time
}

type relaxStep struct {
	name    string
	radius  float64
	clock   string
	message string
}

// NewRelaxingSearchService constructs a RelaxingSearchService whose notices
// come from labels.
func NewRelaxingSearchService(searcher NearbySearcher, labels openinghours.Labels) *RelaxingSearchService {
	return &RelaxingSearchService{
		searcher: searcher,
		labels:   labels,
		now:      time.Now,
	}
}

// Search runs the steps in order and returns the first non-empty result.
// Steps:
//  1. default radius at the requested time
//  2. relaxed radius at the requested time
//  3. relaxed radius at the relaxed time, unless that is the requested time
//
// An error from any step ends the search.
func (rs *RelaxingSearchService) Search(ctx context.Context, req models.RelaxedSearchRequest) (*models.RelaxedSearchResponse, error) {
	date, err := rs.baseDate(req.Date)
	if err != nil {
		return nil, err
	}
	clock := req.Time
	if clock == "" {
		clock = config.DEFAULT_TARGET_TIME
	}

	steps := []relaxStep{
		{name: "default", radius: config.DEFAULT_SEARCH_RADIUS_METERS, clock: clock},
		{name: "radius", radius: config.RELAXED_SEARCH_RADIUS_METERS, clock: clock, message: rs.labels.RadiusWidened},
	}
	if clock != config.RELAXED_TARGET_TIME {
		steps = append(steps, relaxStep{
			name:    "time",
			radius:  config.RELAXED_SEARCH_RADIUS_METERS,
			clock:   config.RELAXED_TARGET_TIME,
			message: rs.labels.TimeAdjusted(config.RELAXED_TARGET_TIME),
		})
	}

	var last models.RelaxedSearchResponse
	for _, step := range steps {
		target, err := openinghours.NewWallClockInstantAt(date, step.clock)
		if err != nil {
			return nil, models.NewPlacesAPIError(models.InvalidRequest, fmt.Sprintf("time must be HH:mm: %v", err))
		}

		result, err := rs.searcher.SearchNearby(ctx, models.SearchNearbyRequest{
			Location:   req.Location,
			Radius:     step.radius,
			TargetTime: target,
		})
		if err != nil {
			return nil, err
		}

		last = models.RelaxedSearchResponse{Places: result.Places, Radius: step.radius, TargetTime: target.String()}
		if len(result.Places) > 0 {
			telemetry.RelaxedSearchStepTotal.WithLabelValues(step.name).Inc()
			last.Message = step.message
			log.Debug().Str("component", relaxingSearchComponent).
				Str("step", step.name).
				Int("places", len(result.Places)).
				Msg("relaxed search answered")
			return &last, nil
		}
	}

	telemetry.RelaxedSearchStepTotal.WithLabelValues("none").Inc()
	last.Message = rs.labels.NothingFound
	return &last, nil
}

// baseDate parses YYYY-MM-DD, defaulting to today in the fixed zone.
func (rs *RelaxingSearchService) baseDate(date string) (time.Time, error) {
	if date == "" {
		return rs.now().In(openinghours.Zone()), nil
	}
	parsed, err := time.ParseInLocation(dateLayout, date, openinghours.Zone())
	if err != nil {
		return time.Time{}, models.NewPlacesAPIError(models.InvalidRequest, fmt.Sprintf("date must be YYYY-MM-DD: %q", date))
	}
	return parsed, nil
}
