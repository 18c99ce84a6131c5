package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"yonayona-server/models"
	"yonayona-server/openinghours"
)

const placeHandlerComponent = "PlaceHandler"

// maxRequestBodyBytes bounds the JSON bodies the search endpoints accept.
const maxRequestBodyBytes = 64 << 10

// PlaceSearcher runs a single nearby search.
type PlaceSearcher interface {
	SearchNearby(ctx context.Context, req models.SearchNearbyRequest) (*models.DisplayPlacesResponse, error)
}

// RelaxedSearcher runs a nearby search that relaxes radius and time when
// nothing is open.
type RelaxedSearcher interface {
	Search(ctx context.Context, req models.RelaxedSearchRequest) (*models.RelaxedSearchResponse, error)
}

type PlaceHandler struct {
	placeSearcher   PlaceSearcher
	relaxedSearcher RelaxedSearcher
}

func NewPlaceHandler(placeSearcher PlaceSearcher, relaxedSearcher RelaxedSearcher) *PlaceHandler {
	return &PlaceHandler{
		placeSearcher:   placeSearcher,
		relaxedSearcher: relaxedSearcher,
	}
}

// SearchPlaces handles POST /api/places/search
func (h *PlaceHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	var req models.SearchNearbyRequest
	if apiErr := decodeBody(w, r, &req); apiErr != nil {
		writeError(w, apiErr)
		return
	}

	resp, err := h.placeSearcher.SearchNearby(r.Context(), req)
	if err != nil {
		writeError(w, toAPIError(err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SearchPlacesRelaxed handles POST /api/places/search/relaxed
func (h *PlaceHandler) SearchPlacesRelaxed(w http.ResponseWriter, r *http.Request) {
	var req models.RelaxedSearchRequest
	if apiErr := decodeBody(w, r, &req); apiErr != nil {
		writeError(w, apiErr)
		return
	}

	resp, err := h.relaxedSearcher.Search(r.Context(), req)
	if err != nil {
		writeError(w, toAPIError(err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Ping handles GET /ping
func (h *PlaceHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Debug().Str("component", placeHandlerComponent).Msg("ping")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) *models.PlacesAPIError {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, openinghours.ErrMalformedInstant) {
			return models.NewPlacesAPIError(models.InvalidRequest, err.Error())
		}
		return models.NewPlacesAPIError(models.InvalidRequest, fmt.Sprintf("Request body must be valid JSON: %v", err))
	}
	return nil
}

func toAPIError(err error) *models.PlacesAPIError {
	if apiErr, ok := models.AsPlacesAPIError(err); ok {
		return apiErr
	}
	log.Error().Str("component", placeHandlerComponent).Err(err).Msg("unexpected search failure")
	return models.NewPlacesAPIError(models.ServiceUnavailable, "Search failed.")
}

func writeError(w http.ResponseWriter, apiErr *models.PlacesAPIError) {
	writeJSON(w, apiErr.HTTPStatus(), models.ErrorResponse{Error: apiErr})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Str("component", placeHandlerComponent).Err(err).Msg("error encoding response")
	}
}
