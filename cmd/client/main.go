package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-messenger/internal/adapter"
	"github.com/MKhiriev/go-messenger/internal/client"
	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/internal/tui"
	"github.com/MKhiriev/go-messenger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-messenger-client", cfg.Log.File)
	logger.SetLevel(cfg.Log.Level)

	serverAdapter, err := adapter.NewHTTPMessageStoreAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create message store adapter")
	}

	services := service.NewClientServices(serverAdapter, cfg.Workers, log)
	ui := tui.New(services.MessengerService, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		os.Exit(1)
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
