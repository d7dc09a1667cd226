package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chirpy/internal/config"
	"chirpy/internal/database"
	"chirpy/internal/pkg/logger"
	"chirpy/internal/server"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	cmd := &cobra.Command{
		Use:           "chirpy",
		Short:         "Chirpy API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		// bare `chirpy` serves
		RunE: serve.RunE,
	}
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}

			if !skipMigrate {
				if err := database.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				logger.Log.Info("Database migrated")
			}

			return server.Run(cmd.Context(), cfg, db)
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not run schema migration on startup")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Log.Info("Database migrated")
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with demo users and chirps (dev platform only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			if !cfg.IsDev() {
				return fmt.Errorf("seed refuses to run with PLATFORM=%q", cfg.Platform)
			}

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			n, err := database.Seed(cmd.Context(), db, cfg.FeedUserID)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Log.Infof("Seed complete: %d chirps", n)
			return nil
		},
	}
}

func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Log.Info("Configuration loaded successfully")

	db, err := database.Connect(cfg.DBURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}
