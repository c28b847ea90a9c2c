package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/intern-match/internal/client"
	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("intern-match-client", cfg.App.LogPath)

	ctx := context.Background()
	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
