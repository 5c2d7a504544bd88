package main

import (
	"context"
	"fmt"

	"github.com/hwalton/snapcram/internal/api"
	"github.com/hwalton/snapcram/internal/client"
	"github.com/hwalton/snapcram/internal/config"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/service"
	"github.com/hwalton/snapcram/internal/store"
	"github.com/hwalton/snapcram/internal/tui"
	"github.com/hwalton/snapcram/internal/workers"
	"github.com/hwalton/snapcram/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("snapcram")
	cfg, err := config.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, cfg.App.EncryptionKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := api.NewHTTPServerAdapter(cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewServices(storages, serverAdapter, log)

	info := models.AppBuildInfo{
		Version:      buildVersion,
		Date:         buildDate,
		Commit:       buildCommit,
		SupportEmail: cfg.App.SupportEmail,
	}
	if cfg.App.Version != "" {
		info.Version = cfg.App.Version
	}

	refreshJob := workers.NewRefreshJob(services.Decks, log)
	ui := tui.New(services, info, log)

	if err = client.NewApp(cfg, services, refreshJob, ui, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
