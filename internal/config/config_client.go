// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to zero-valued client settings.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultStorageDSN     = "intern-match.db"
	DefaultSyncInterval   = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultRetryBaseDelay = time.Second
	DefaultFeedPageSize   = 50
	DefaultDraftDebounce  = time.Second
)

// ClientApp holds identity and process-level client settings.
type ClientApp struct {
	// Token is the bearer token used for remote requests.
	Token string
	// Version is reported in logs at start-up.
	Version string
	// LogPath is the client log file.
	LogPath string
}

// ClientAdapter holds settings of the transport to the remote data source.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote data source.
	HTTPAddress string
	// RequestTimeout bounds a single outbound request.
	RequestTimeout time.Duration
}

// ClientStorage holds durable local storage settings.
type ClientStorage struct {
	// DSN selects and addresses the storage backend.
	DSN string
}

// ClientSync holds polling and retry settings.
type ClientSync struct {
	// Interval between silent refreshes; zero disables periodic refresh.
	Interval time.Duration
	// MaxRetries after a failed fetch.
	MaxRetries int
	// RetryBaseDelay is the linear backoff unit.
	RetryBaseDelay time.Duration
	// FeedPageSize is the number of notifications requested per poll.
	FeedPageSize int
}

// ClientDrafts holds draft persistence settings.
type ClientDrafts struct {
	// Debounce is the trailing-edge quiet period before a draft is written.
	Debounce time.Duration
}

// ClientDebug holds optional diagnostics settings.
type ClientDebug struct {
	// MetricsAddress, when non-empty, serves Prometheus metrics.
	MetricsAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Drafts  ClientDrafts
	Debug   ClientDebug
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration loaded with args.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:   cfg.App.Token,
			Version: cfg.App.Version,
			LogPath: cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DSN},
		Sync: ClientSync{
			Interval:       cfg.Sync.Interval,
			MaxRetries:     cfg.Sync.MaxRetries,
			RetryBaseDelay: cfg.Sync.RetryBaseDelay,
			FeedPageSize:   cfg.Sync.FeedPageSize,
		},
		Drafts: ClientDrafts{Debounce: cfg.Drafts.Debounce},
		Debug:  ClientDebug{MetricsAddress: cfg.Debug.MetricsAddress},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = DefaultStorageDSN
	}
	switch {
	case cfg.Sync.Interval == 0:
		cfg.Sync.Interval = DefaultSyncInterval
	case cfg.Sync.Interval < 0:
		cfg.Sync.Interval = 0
	}
	if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Sync.RetryBaseDelay == 0 {
		cfg.Sync.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if cfg.Sync.FeedPageSize == 0 {
		cfg.Sync.FeedPageSize = DefaultFeedPageSize
	}
	if cfg.Drafts.Debounce == 0 {
		cfg.Drafts.Debounce = DefaultDraftDebounce
	}
}
