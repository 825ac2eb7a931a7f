package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup initializes the config file and the profile store.
//
// Creates config.toml from the embedded template when missing, then opens
// the SQLite profile database and runs migrations.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing profile store", "path", config.Store.Path)

	db, err := shared.NewDatabase(config.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to create profile store: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Store.MaxOpenConns, config.Store.MaxIdleConns)

	r.logger.Info("running store migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for profile store: %v", config.Store.Path)

	r.writePlain("✓ Profile store ready at %s\n", config.Store.Path)
	if config.Catalog.APIKey == "" {
		r.writePlainln("Next step: add your TMDB api_key to config.toml")
	}
	return nil
}
