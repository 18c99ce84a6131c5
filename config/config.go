package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const HTTP_ADDRESS = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Google Places API config
const GOOGLE_PLACES_ENDPOINT_BASE = "https://places.googleapis.com"

// Search config
const SEARCH_CACHE_TTL_SECONDS = 300
const MIN_SEARCH_RADIUS_METERS = 1
const MAX_SEARCH_RADIUS_METERS = 50000
const DEFAULT_SEARCH_RADIUS_METERS = 800
const RELAXED_SEARCH_RADIUS_METERS = 1200
const DEFAULT_TARGET_TIME = "23:00"
const RELAXED_TARGET_TIME = "22:00"

// Places refresher config
const PLACES_REFRESHER_SCHEDULE_MINUTES = 30

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_NEARBY_RESPONSE_RESOURCE = "search_nearby_response.json"
const HOTSPOTS_RESOURCE = "hotspots.json"

const (
	ENV_DEVELOPMENT = "development"
	ENV_PROD        = "prod"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	Environment          string
	HTTPAddr             string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	GooglePlacesAPIKey   string
	GooglePlacesEndpoint string
	DisplayLocale        string
	SearchCacheTTL       time.Duration
	RefresherInterval    time.Duration
	LogLevel             string
}

// Load reads the configuration from the environment after loading an
// optional .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:          getEnv("APP_ENV", ENV_DEVELOPMENT),
		HTTPAddr:             getEnv("HTTP_ADDR", HTTP_ADDRESS),
		RedisAddr:            getEnv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:        getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		GooglePlacesAPIKey:   getEnv("GOOGLE_PLACES_API_KEY", ""),
		GooglePlacesEndpoint: getEnv("GOOGLE_PLACES_ENDPOINT", GOOGLE_PLACES_ENDPOINT_BASE),
		DisplayLocale:        getEnv("DISPLAY_LOCALE", "ja"),
		LogLevel:             getEnv("LOG_LEVEL", ""),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", REDIS_DB); err != nil {
		return nil, err
	}
	ttlSeconds, err := getEnvInt("SEARCH_CACHE_TTL_SECONDS", SEARCH_CACHE_TTL_SECONDS)
	if err != nil {
		return nil, err
	}
	if ttlSeconds < 0 {
		return nil, fmt.Errorf("SEARCH_CACHE_TTL_SECONDS must not be negative, got %d", ttlSeconds)
	}
	cfg.SearchCacheTTL = time.Duration(ttlSeconds) * time.Second

	refresherMinutes, err := getEnvInt("PLACES_REFRESHER_SCHEDULE_MINUTES", PLACES_REFRESHER_SCHEDULE_MINUTES)
	if err != nil {
		return nil, err
	}
	cfg.RefresherInterval = time.Duration(refresherMinutes) * time.Minute

	if cfg.IsProd() && cfg.GooglePlacesAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_PLACES_API_KEY must be provided when APP_ENV=%s", ENV_PROD)
	}
	return cfg, nil
}

// IsProd reports whether the real upstream API and Redis should be used.
func (c *Config) IsProd() bool {
	return strings.EqualFold(c.Environment, ENV_PROD)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
