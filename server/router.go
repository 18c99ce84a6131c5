package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"yonayona-server/telemetry"
)

// PlaceRoutes is the set of handlers the router dispatches to.
type PlaceRoutes interface {
	SearchPlaces(w http.ResponseWriter, r *http.Request)
	SearchPlacesRelaxed(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	placeHandler PlaceRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	placeHandler PlaceRoutes,
	router *mux.Router) *Router {
	return &Router{
		placeHandler: placeHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(telemetry.MetricsMiddleware)

	// expects {"location":{"lat":..,"lng":..},"radius":..,"targetTime":"YYYY-MM-DDTHH:mm:ss"}
	r.router.HandleFunc("/api/places/search", r.placeHandler.SearchPlaces).Methods("POST")
	// expects {"location":{"lat":..,"lng":..},"date":"YYYY-MM-DD","time":"HH:mm"}
	r.router.HandleFunc("/api/places/search/relaxed", r.placeHandler.SearchPlacesRelaxed).Methods("POST")

	r.router.HandleFunc("/ping", r.placeHandler.Ping).Methods("GET")
	r.router.Handle("/metrics", telemetry.Handler()).Methods("GET")
}
