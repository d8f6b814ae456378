// Package main starts the HTTP API that scores network security posture and
// renders attack-surface graphs for posted asset inventories.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/netposture/core/internal/analysis"
	"github.com/netposture/core/internal/config"
	"github.com/netposture/core/internal/handlers"
	"github.com/netposture/core/internal/metrics"
	"github.com/netposture/core/internal/risk"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "netposture-api",
		Short: "Serve the network posture assessment API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the service config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).Level(cfg.LogLevel()).With().Timestamp().Logger()

	riskCfg, err := risk.LoadConfig(cfg.Risk.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load risk config: %w", err)
	}

	registry := metrics.DefaultRegistry()

	var analyzer analysis.Analyzer
	client, err := analysis.NewClient(analysis.Options{
		URL:      cfg.Analyzer.URL,
		Timeout:  cfg.Analyzer.Timeout,
		RetryMax: cfg.Analyzer.RetryMax,
		Logger:   logger.With().Str("component", "analyzer").Logger(),
	})
	switch {
	case err == nil:
		analyzer = client
	case errors.Is(err, analysis.ErrNotConfigured):
		logger.Info().Msg("analyzer url not set, /api/v1/analyze disabled")
	default:
		return fmt.Errorf("failed to create analyzer client: %w", err)
	}

	h := handlers.NewHandler(handlers.Options{
		RiskConfig: riskCfg,
		Analyzer:   analyzer,
		Metrics:    registry,
	})

	router := newRouter(routerDeps{
		Handler:       h,
		Metrics:       registry,
		Logger:        logger,
		AllowedOrigin: cfg.CORS.AllowedOrigin,
	})

	return newServer(cfg.Server.Addr(), router, logger, cfg.Server.ShutdownTimeout).run()
}
