package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"yonayona-server/api"
	"yonayona-server/api/googleplaces"
	"yonayona-server/config"
	"yonayona-server/dao/redis"
	"yonayona-server/db"
	"yonayona-server/models/place"
	"yonayona-server/openinghours"
	"yonayona-server/server"
	"yonayona-server/server/handlers"
	services "yonayona-server/service"
	"yonayona-server/util"
)

const containerComponent = "Container"

// Container holds all application dependencies.
type Container struct {
	Config                 *config.Config
	RedisClient            db.RedisClient
	RedisPlaceDao          *redis.RedisPlaceDAO
	PlacesAPI              googleplaces.PlacesAPI
	Labels                 openinghours.Labels
	PlaceService           *services.PlaceService
	RelaxingSearchService  *services.RelaxingSearchService
	PlacesRefresherService *services.PlacesRefresherService
	PlaceHandler           *handlers.PlaceHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	YonayonaHttpServer     *server.YonayonaHttpServer

	closers []io.Closer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("component", containerComponent).Str("env", cfg.Environment).Msg("initializing container")

	// Redis: real geo index in prod, in-memory otherwise
	var redisClient db.RedisClient
	var closers []io.Closer
	if cfg.IsProd() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		geoClient, err := db.NewGeoRedisClient(ctx, redisInternalClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisClient = geoClient
		closers = append(closers, geoClient)
	} else {
		log.Info().Str("component", containerComponent).Msg("using in-memory redis")
		redisClient = db.NewMockRedisClient(ctx)
	}

	redisPlaceDao := redis.NewRedisPlaceDAO(redisClient)

	var placesApi googleplaces.PlacesAPI
	if cfg.IsProd() {
		log.Info().Str("component", containerComponent).Msg("using prod google places api")
		httpClient := api.NewHTTPClient(cfg.GooglePlacesEndpoint)
		placesApi = googleplaces.NewGooglePlacesApiClient(httpClient, cfg.GooglePlacesAPIKey)
	} else {
		log.Info().Str("component", containerComponent).Msg("using mock google places api")
		placesApi = googleplaces.NewGooglePlacesApiClientMock(config.GetResourcePath(config.SEARCH_NEARBY_RESPONSE_RESOURCE))
	}

	labels := openinghours.LabelsFor(cfg.DisplayLocale)
	formatter := openinghours.NewFormatter(labels)

	placeService := services.NewPlaceService(redisPlaceDao, placesApi, formatter, cfg.SearchCacheTTL)
	relaxingSearchService := services.NewRelaxingSearchService(placeService, labels)

	hotspots, err := util.ReadHotspotsFromJSON(config.GetResourcePath(config.HOTSPOTS_RESOURCE))
	if err != nil {
		log.Warn().Str("component", containerComponent).Err(err).Msg("no hotspots loaded; refresher will idle")
		hotspots = []place.LatLng{}
	}
	placesRefresherService := services.NewPlacesRefresherService(redisPlaceDao, placesApi, hotspots, cfg.SearchCacheTTL)

	placeHandler := handlers.NewPlaceHandler(placeService, relaxingSearchService)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(placeHandler, muxRouter)
	httpServer := server.NewYonayonaHttpServer(
		router,
		muxRouter,
		cfg.HTTPAddr,
		config.HTTP_SHUTDOWN_TIMEOUT_SECONDS*time.Second,
	)

	return &Container{
		Config:                 cfg,
		RedisClient:            redisClient,
		RedisPlaceDao:          redisPlaceDao,
		PlacesAPI:              placesApi,
		Labels:                 labels,
		PlaceService:           placeService,
		RelaxingSearchService:  relaxingSearchService,
		PlacesRefresherService: placesRefresherService,
		PlaceHandler:           placeHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		YonayonaHttpServer:     httpServer,
		closers:                closers,
	}, nil
}

// Close releases connections opened by NewContainer.
func (c *Container) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close container: %w", err)
	}
	log.Info().Str("component", containerComponent).Msg("container closed")
	return nil
}
