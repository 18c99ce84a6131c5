package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"yonayona-server/di"
	"yonayona-server/models"
	"yonayona-server/models/place"
	"yonayona-server/util"
)

var (
	searchLat     float64
	searchLng     float64
	searchDate    string
	searchTime    string
	searchPlot    string
	searchTimeout time.Duration
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one relaxed search and print the open places",
	Long: `search runs the same relaxed search as POST /api/places/search/relaxed
and prints one line per open place.

Examples:
  yonayona-server search --lat 35.6938 --lng 139.7034
  yonayona-server search --lat 35.6938 --lng 139.7034 --date 2025-10-31 --time 25:30 --plot places.html`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "Latitude of the search center (required)")
	searchCmd.Flags().Float64Var(&searchLng, "lng", 0, "Longitude of the search center (required)")
	searchCmd.Flags().StringVar(&searchDate, "date", "", "Date as YYYY-MM-DD (default: today in Asia/Tokyo)")
	searchCmd.Flags().StringVar(&searchTime, "time", "", "Time as HH:mm, 24:00 and later mean after midnight (default: 23:00)")
	searchCmd.Flags().StringVar(&searchPlot, "plot", "", "Write an HTML map of the results to this file")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 30*time.Second, "Overall search timeout")
	searchCmd.MarkFlagRequired("lat")
	searchCmd.MarkFlagRequired("lng")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), searchTimeout)
	defer cancel()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn().Err(err).Msg("closing container failed")
		}
	}()

	center := place.LatLng{Lat: searchLat, Lng: searchLng}
	resp, err := container.RelaxingSearchService.Search(ctx, models.RelaxedSearchRequest{
		Location: center,
		Date:     searchDate,
		Time:     searchTime,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s within %.0fm\n", resp.TargetTime, resp.Radius)
	if resp.Message != "" {
		fmt.Fprintln(out, resp.Message)
	}
	util.PrintDisplayPlaces(out, resp.Places)

	if searchPlot != "" {
		if err := util.PlotPlaces(searchPlot, center, resp.Places); err != nil {
			return fmt.Errorf("plot failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Map written to %s\n", searchPlot)
	}
	return nil
}
