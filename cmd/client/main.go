package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-auth-shell/internal/adapter"
	"github.com/MKhiriev/go-auth-shell/internal/client"
	"github.com/MKhiriev/go-auth-shell/internal/config"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/tui"
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

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-auth-client", cfg.Log.File)
	log.Debug().Any("adapter", cfg.Adapter).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui := tui.New(serverAdapter, buildInfo, log)

	app := client.NewApp(ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
