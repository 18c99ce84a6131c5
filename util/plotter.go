package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/rs/zerolog/log"

	"yonayona-server/models/place"
)

// BuildPlacesChart builds a Geo scatter chart of places around center.
// Each point is labelled with the place name and its status text.
func BuildPlacesChart(center place.LatLng, places []place.DisplayPlace) *charts.Geo {
	points := make([]opts.GeoData, 0, len(places)+1)
	points = append(points, opts.GeoData{Name: "search center", Value: []float64{center.Lng, center.Lat}})
	for _, p := range places {
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("%s %s", p.DisplayName, p.BusinessStatus.StatusText),
			Value: []float64{p.Location.Lng, p.Location.Lat, float64(p.BusinessStatus.RemainingMinutes)},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Open Places",
			Width:     "900px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Open places",
			Subtitle: fmt.Sprintf("%d places", len(places)),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Places", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	return geo
}

// PlotPlaces renders the places chart into an HTML file at path.
func PlotPlaces(path string, center place.LatLng, places []place.DisplayPlace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := BuildPlacesChart(center, places).Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	log.Info().Str("component", "Plotter").Str("path", path).Int("places", len(places)).Msg("places map generated")
	return nil
}
