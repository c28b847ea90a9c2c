package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/intern-match/internal/adapter"
	"github.com/MKhiriev/intern-match/internal/clock"
	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/metrics"
	"github.com/MKhiriev/intern-match/internal/service"
	"github.com/MKhiriev/intern-match/internal/store"
	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/MKhiriev/intern-match/internal/workers"
)

const (
	defaultReportInterval = 30 * time.Second
	lastRunStateKey       = "last_run"
	lastUnreadStateKey    = "last_unread_count"
)

// App is the headless client process: it keeps the dashboard collections
// and the notification feed in sync while running.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	storages *store.ClientStorages
	workers  *workers.Workers
	registry *metrics.Registry
	owner    string

	logger *logger.Logger
}

// NewApp wires the remote adapter, local storage and services from cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return newApp(ctx, cfg, remote, storages, clock.New(), log), nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, remote adapter.RemoteSource, storages *store.ClientStorages,
	clk clock.Clock, log *logger.Logger) *App {
	registry := metrics.NewRegistry()
	services := service.NewClientServices(cfg, remote, storages, registry, clk, log)

	owner, err := utils.SubjectFromJWT(cfg.App.Token)
	if err != nil {
		log.Warn().Err(err).Msg("no owner in token, local state is not persisted")
	}
	services.Scope.Bind(ctx, owner)

	var ws []workers.Worker
	for _, s := range services.Sessions() {
		ws = append(ws, s)
	}

	return &App{
		cfg:      cfg,
		services: services,
		storages: storages,
		workers:  workers.New(ws...),
		registry: registry,
		owner:    owner,
		logger:   log,
	}
}

// Run activates every session and blocks until ctx is done or the process
// is asked to stop. SIGHUP triggers a foreground refresh.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if a.cfg.Debug.MetricsAddress != "" {
		metricsServer := &http.Server{
			Addr:              a.cfg.Debug.MetricsAddress,
			Handler:           a.registry.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Err(err).Str("address", metricsServer.Addr).Msg("metrics server stopped")
			}
		}()
		defer metricsServer.Close()
	}

	refresh := make(chan os.Signal, 1)
	signal.Notify(refresh, syscall.SIGHUP)
	defer signal.Stop(refresh)

	a.logger.Info().Str("owner", a.owner).Str("version", a.cfg.App.Version).Msg("client started")
	a.workers.SetActive(true)

	ticker := time.NewTicker(a.reportInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return a.shutdown()
		case <-refresh:
			a.logger.Info().Msg("refresh requested")
			for _, s := range a.services.Sessions() {
				s.Refresh()
			}
		case <-ticker.C:
			a.report()
		}
	}
}

func (a *App) reportInterval() time.Duration {
	if a.cfg.Sync.Interval > 0 {
		return a.cfg.Sync.Interval
	}
	return defaultReportInterval
}

func (a *App) report() {
	feed := a.services.Feed.Snapshot()
	apps := a.services.Dashboard.Applications.Snapshot()
	internships := a.services.Dashboard.Internships.Snapshot()

	event := a.logger.Info()
	if feed.Err != nil || apps.Err != nil || internships.Err != nil {
		event = a.logger.Warn()
	}
	event.
		Int("unread", feed.Data.UnreadCount).
		Int("notifications", len(feed.Data.Items)).
		Str("feed_state", feed.State.String()).
		Str("feed_error", feed.Error).
		Int("applications", len(apps.Data)).
		Str("applications_state", apps.State.String()).
		Int("internships", len(internships.Data)).
		Str("internships_state", internships.State.String()).
		Bool("stale", a.services.Feed.IsStale()).
		Msg("sync status")
}

func (a *App) shutdown() error {
	a.logger.Info().Msg("shutting down client")
	a.workers.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if a.owner != "" {
		if err := a.services.Scope.SetState(ctx, lastUnreadStateKey, a.services.Feed.UnreadCount()); err != nil {
			a.logger.Err(err).Msg("save unread count")
		}
		if err := a.services.Scope.SetState(ctx, lastRunStateKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
			a.logger.Err(err).Msg("save last run")
		}
	}

	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}
