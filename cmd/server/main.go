package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/handler"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/metrics"
	"github.com/MKhiriev/go-messenger/internal/server"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-messenger-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.Log.Level)

	log.Debug().Any("config", cfg).Msg("received configs")

	storage, err := store.NewStorage(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storage")
		}
	}()

	services := service.NewServices(storage, log)

	handlers, err := handler.NewHandlers(services, metrics.New(storage, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
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
