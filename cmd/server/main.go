package main

import (
	"context"
	"fmt"

	"github.com/everhold/everhold/internal/config"
	myHTTP "github.com/everhold/everhold/internal/handler/http"
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/server"
	"github.com/everhold/everhold/internal/service"
	"github.com/everhold/everhold/internal/storage"
	"github.com/everhold/everhold/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("everhold-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	storages := store.NewStorages(db, log)

	blobStore, err := storage.NewSupabaseBlobStore(cfg.Storage.Blob, cfg.Server.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	services := service.NewServices(*storages, blobStore, log)

	handler := myHTTP.NewHandler(services, cfg.Auth, db, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
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
