package http

import (
	"math/rand/v2"

	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/validators"
	"github.com/MKhiriev/intern-match/models"
)

type Handler struct {
	backend   Backend
	validator validators.Validator
	buildInfo models.AppBuildInfo

	signKey string
	issuer  string

	limiter     *clientLimiter
	failureRate float64
	// roll returns a number in [0,1) deciding injected failures.
	roll func() float64

	logger *logger.Logger
}

func NewHandler(backend Backend, cfg *config.DevServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend:     backend,
		validator:   validators.NewNotificationValidator(),
		buildInfo:   buildInfo,
		signKey:     cfg.SignKey,
		issuer:      cfg.Issuer,
		limiter:     newClientLimiter(cfg.RateLimit, cfg.Burst),
		failureRate: cfg.FailureRate,
		roll:        rand.Float64,
		logger:      logger,
	}
}
