package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-comment-board/internal/config"
	myHTTP "github.com/MKhiriev/go-comment-board/internal/handler/http"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/server"
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
