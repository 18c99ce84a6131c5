package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"yonayona-server/config"
	"yonayona-server/di"
	"yonayona-server/logging"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "yonayona-server",
	Short: "Late-night place search",
	Long:  "yonayona-server finds places near a location that are open at a given time of night.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server and the places refresher",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(cfg.Environment, cfg.LogLevel)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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

	refreshed := container.PlacesRefresherService.RefreshPlaces(ctx)
	log.Info().Int("places", refreshed).Msg("initial refresh completed")
	container.PlacesRefresherService.StartPeriodicJob(ctx, cfg.RefresherInterval)

	return container.YonayonaHttpServer.Start(ctx)
}
