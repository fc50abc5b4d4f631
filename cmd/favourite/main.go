package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/favourite-service/internal/core/config"
	"github.com/aevon-lab/favourite-service/internal/core/storage"
	"github.com/aevon-lab/favourite-service/internal/core/storage/memory"
	"github.com/aevon-lab/favourite-service/internal/core/storage/postgres"
	"github.com/aevon-lab/favourite-service/internal/favourite"
	"github.com/aevon-lab/favourite-service/internal/migrations"
	"github.com/aevon-lab/favourite-service/internal/remote"
	"github.com/aevon-lab/favourite-service/internal/server"
)

// store is what main needs from a storage backend beyond the FavouriteStore contract.
type store interface {
	storage.FavouriteStore
	server.HealthChecker
}

func main() {
	configPath := flag.String("config", "favourite.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database_type", cfg.Database.Type,
		"user_service", cfg.Services.User.BaseURL,
		"product_service", cfg.Services.Product.BaseURL,
		"max_concurrency", cfg.Enrichment.MaxConcurrency)

	// 2. Initialize Storage
	favStore, closeStore, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 3. Initialize Remote Sources
	users, err := remote.NewUserSource(remote.Config{
		BaseURL: cfg.Services.User.BaseURL,
		Timeout: cfg.Services.User.TimeoutDuration(),
	})
	if err != nil {
		slog.Error("Failed to initialize user source", "error", err)
		os.Exit(1)
	}
	products, err := remote.NewProductSource(remote.Config{
		BaseURL: cfg.Services.Product.BaseURL,
		Timeout: cfg.Services.Product.TimeoutDuration(),
	})
	if err != nil {
		slog.Error("Failed to initialize product source", "error", err)
		os.Exit(1)
	}

	slog.Info("Remote sources configured", "user_source", users.Name(), "product_source", products.Name())

	// 4. Initialize Favourite Service
	favouriteSvc := favourite.NewService(favStore, users, products, favourite.Options{
		MaxConcurrency: cfg.Enrichment.MaxConcurrency,
		MaxBodySizeMB:  cfg.Server.MaxBodySizeMB,
	})

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), favStore, cfg.Server.Mode)
	favouriteSvc.RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore builds the configured backend. For postgres it runs migrations
// before preparing statements, since preparation needs the table to exist.
func openStore(cfg corecfg.DatabaseConfig) (store, func(), error) {
	if cfg.Type == corecfg.DatabaseTypeMemory {
		slog.Warn("Using in-memory favourite store; data is lost on restart")
		return memory.NewFavouriteStore(), func() {}, nil
	}

	dbAdapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}

	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.AutoMigrate); err != nil {
		dbAdapter.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	if err := dbAdapter.PrepareStatements(); err != nil {
		dbAdapter.Close()
		return nil, nil, err
	}

	return dbAdapter, func() {
		if err := dbAdapter.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}, nil
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
