// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the client view after defaults have been applied.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	raw := cfg.Adapter.HTTPAddress
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	if u, err := url.Parse(raw); err != nil || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.MaxRetries < 0 || cfg.Sync.RetryBaseDelay < 0 || cfg.Sync.FeedPageSize < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Drafts.Debounce < 0 {
		return ErrInvalidDraftConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.RateLimit < 0 || cfg.Burst < 0 || cfg.FailureRate < 0 || cfg.FailureRate > 1 || cfg.TokenTTL < 0 {
		return ErrInvalidDevServerConfigs
	}

	var addr NetAddress
	if err := addr.Set(cfg.Address); err != nil {
		return ErrInvalidDevServerConfigs
	}

	return nil
}
