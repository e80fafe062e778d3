package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-auth-shell/internal/config"
	handler "github.com/MKhiriev/go-auth-shell/internal/handler/http"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/metrics"
	"github.com/MKhiriev/go-auth-shell/internal/server"
	"github.com/MKhiriev/go-auth-shell/internal/service"
	"github.com/MKhiriev/go-auth-shell/internal/store"
	"github.com/MKhiriev/go-auth-shell/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-auth-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("server", cfg.Server).Str("version", cfg.App.Version).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	router := handler.NewHandler(services, metrics.New(), log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
