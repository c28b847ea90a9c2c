package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/fakeremote"
	handler "github.com/MKhiriev/intern-match/internal/handler/http"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/server"
	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/MKhiriev/intern-match/models"
)

const (
	devOwner        = "student-1"
	publishInterval = 45 * time.Second
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("intern-match-devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	token, err := utils.GenerateJWTToken(cfg.Issuer, devOwner, cfg.TokenTTL, cfg.SignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error issuing dev token")
	}
	fmt.Printf("Dev token for %s: %s\n", devOwner, token)

	backend := fakeremote.NewBackend(log)
	h := handler.NewHandler(backend, cfg, buildInfo, log)

	srv, err := server.NewServer(h.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go backend.RunPublisher(ctx, publishInterval)

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
