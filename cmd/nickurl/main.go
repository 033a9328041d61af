package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AntonioJCosta/nickurl/internal/adapters/oscommand"
	"github.com/AntonioJCosta/nickurl/internal/config"
	"github.com/AntonioJCosta/nickurl/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/nickurl/internal/core/services/resolution"
	"github.com/AntonioJCosta/nickurl/internal/handlers/cli"
	"github.com/AntonioJCosta/nickurl/internal/logging"
	"github.com/AntonioJCosta/nickurl/internal/repositories/sqlitestore"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, bootstrap)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(configPath string, verbose bool) (*cli.Dependencies, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	store, err := sqlitestore.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("error initializing alias store: %w", err)
	}
	if err := store.CreateSchemaIfAbsent(context.Background()); err != nil {
		store.Close()
		return nil, fmt.Errorf("error initializing alias store: %w", err)
	}
	logger.Debug("alias store ready", zap.String("path", cfg.Database.Path))

	return &cli.Dependencies{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Manager:  aliasmanagement.NewService(store, logger),
		Resolver: resolution.NewService(store, cfg.Search.DefaultURL, logger),
		Opener:   oscommand.NewOSOpener(),
	}, nil
}
