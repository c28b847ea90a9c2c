// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side sync layer of the dashboard:
// polling sessions over remote collections, debounced local drafts, the
// notification feed and owner-scoped local state.
package service

import (
	"context"

	"github.com/MKhiriev/intern-match/internal/adapter"
	"github.com/MKhiriev/intern-match/internal/clock"
	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/metrics"
	"github.com/MKhiriev/intern-match/internal/store"
	"github.com/MKhiriev/intern-match/models"
)

const applicationDraftKeyPrefix = "application_draft_"

// ClientServices groups the services of a running client.
type ClientServices struct {
	Feed      *NotificationFeed
	Dashboard *Dashboard
	Scope     *Scope

	drafts   store.KeyValueStore
	draftCfg config.ClientDrafts
	clock    clock.Clock
	metrics  metrics.SyncRecorder
	logger   *logger.Logger
}

// NewClientServices builds the services from cfg. Sessions start inactive.
func NewClientServices(cfg *config.ClientConfig, remote adapter.RemoteSource, storages *store.ClientStorages,
	rec metrics.SyncRecorder, clk clock.Clock, log *logger.Logger) *ClientServices {
	if clk == nil {
		clk = clock.New()
	}
	if rec == nil {
		rec = metrics.Nop()
	}
	if log == nil {
		log = logger.Nop()
	}

	pollingOpts := []PollingOption{
		WithInterval(cfg.Sync.Interval),
		WithMaxRetries(cfg.Sync.MaxRetries),
		WithRetryBaseDelay(cfg.Sync.RetryBaseDelay),
		WithClock(clk),
		WithMetrics(rec),
	}

	return &ClientServices{
		Feed: NewNotificationFeed(remote,
			WithPageSize(cfg.Sync.FeedPageSize),
			WithAckTimeout(cfg.Adapter.RequestTimeout),
			WithFeedLogger(log),
			WithFeedPolling(pollingOpts...),
		),
		Dashboard: NewDashboard(remote, log, pollingOpts...),
		Scope:     NewScope(storages.State, WithScopeLogger(log)),
		drafts:    storages.Drafts,
		draftCfg:  cfg.Drafts,
		clock:     clk,
		metrics:   rec,
		logger:    log,
	}
}

// Sessions returns every component driven by the activation signal.
func (s *ClientServices) Sessions() []Session {
	return []Session{s.Feed, s.Dashboard}
}

// ApplicationDraft binds the application form for internshipID.
func (s *ClientServices) ApplicationDraft(ctx context.Context, internshipID string) (*Draft[models.ApplicationDraft], error) {
	return BindDraft(ctx, s.drafts, ApplicationDraftKey(internshipID),
		models.ApplicationDraft{InternshipID: internshipID, Skills: []string{}},
		WithDebounce(s.draftCfg.Debounce),
		WithDraftClock(s.clock),
		WithDraftLogger(s.logger),
		WithDraftMetrics(s.metrics),
	)
}

// ApplicationDraftKey is the storage key of the application draft for
// internshipID.
func ApplicationDraftKey(internshipID string) string {
	return applicationDraftKeyPrefix + internshipID
}
