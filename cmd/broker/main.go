package main

import (
	"context"
	"fmt"

	"github.com/keybridge-io/keybridge/internal/adapter"
	"github.com/keybridge-io/keybridge/internal/config"
	"github.com/keybridge-io/keybridge/internal/crypto"
	"github.com/keybridge-io/keybridge/internal/handler"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/server"
	"github.com/keybridge-io/keybridge/internal/service"
	"github.com/keybridge-io/keybridge/internal/store"
	"github.com/keybridge-io/keybridge/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keybridge-broker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := connectDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	engine := crypto.NewEngine(cfg.App.MasterKey)
	storages := store.NewStorages(db, engine, log)

	vault, err := adapter.NewVaultHTTPAdapter(adapter.VaultClientConfig{
		BaseURL:     cfg.Vault.BaseURL,
		Timeout:     cfg.Vault.Timeout,
		RequireAuth: cfg.Vault.RequireAuth,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vault adapter")
	}

	services := service.NewServices(storages, vault, engine, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(cfg.Workers, services, log).Run()

	srv.RunServer()
}

func connectDatabase(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*store.DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return store.NewConnectSQLite(ctx, cfg, log)
	default:
		return store.NewConnectPostgres(ctx, cfg, log)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
