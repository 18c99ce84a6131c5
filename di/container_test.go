package di

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yonayona-server/config"
	"yonayona-server/openinghours"
)

func developmentConfig(t *testing.T) *config.Config {
	t.Helper()
	root, err := filepath.Abs("..")
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", root)

	return &config.Config{
		Environment:    config.ENV_DEVELOPMENT,
		HTTPAddr:       ":0",
		DisplayLocale:  "en",
		SearchCacheTTL: time.Minute,
	}
}

func TestNewContainer_Development(t *testing.T) {
	// Setup
	cfg := developmentConfig(t)

	// Act
	container, err := NewContainer(context.Background(), cfg)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, container.PlaceService)
	assert.NotNil(t, container.RelaxingSearchService)
	assert.NotNil(t, container.PlacesRefresherService)
	assert.NotNil(t, container.YonayonaHttpServer)
	assert.Equal(t, openinghours.EnglishLabels.Closed, container.Labels.Closed)
	assert.NoError(t, container.RedisClient.Ping())
}

func TestNewContainer_ServesSearch(t *testing.T) {
	// Setup
	container, err := NewContainer(context.Background(), developmentConfig(t))
	require.NoError(t, err)
	container.Router.RegisterRoutes()

	// Act
	req := httptest.NewRequest(http.MethodPost, "/api/places/search",
		strings.NewReader(`{"location":{"lat":35.6938,"lng":139.7034},"radius":800,"targetTime":"2025-10-27T23:00:00"}`))
	rr := httptest.NewRecorder()
	container.MuxRouter.ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ChIJgoldengai0001")
	assert.Contains(t, rr.Body.String(), "open, 6 hours left")
}

func TestNewContainer_RefresherUsesHotspots(t *testing.T) {
	container, err := NewContainer(context.Background(), developmentConfig(t))
	require.NoError(t, err)

	refreshed := container.PlacesRefresherService.RefreshPlaces(context.Background())

	assert.Equal(t, 5, refreshed)
}

type recordingCloser struct {
	closed int
	err    error
}

func (c *recordingCloser) Close() error {
	c.closed++
	return c.err
}

func TestContainer_Close(t *testing.T) {
	// Setup
	container, err := NewContainer(context.Background(), developmentConfig(t))
	require.NoError(t, err)
	ok := &recordingCloser{}
	failing := &recordingCloser{err: errors.New("connection reset")}
	container.closers = []io.Closer{ok, failing}

	// Act
	err = container.Close()

	// Assert
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, 1, ok.closed)
	assert.Equal(t, 1, failing.closed)
	assert.NoError(t, container.Close())
	assert.Equal(t, 1, ok.closed)
}

func TestContainer_Close_Development(t *testing.T) {
	container, err := NewContainer(context.Background(), developmentConfig(t))
	require.NoError(t, err)

	assert.NoError(t, container.Close())
}
