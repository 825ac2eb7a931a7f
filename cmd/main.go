package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/reel/internal/catalog"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var catalogService catalog.Service
	if config.Catalog.APIKey != "" {
		if svc, err := catalog.NewTMDBService(catalog.TMDBOpts{
			APIKey:    config.Catalog.APIKey,
			BaseURL:   config.Catalog.BaseURL,
			ImageURL:  config.Catalog.ImageURL,
			RateLimit: config.Catalog.RateLimit,
		}); err == nil {
			catalogService = svc
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalogService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "reel",
		Usage:    "Browse movies, manage favorites, and keep a local profile",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
