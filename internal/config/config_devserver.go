// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Dev server defaults.
const (
	DefaultDevServerAddress = "localhost:8080"
	DefaultDevRateLimit     = 20
	DefaultDevBurst         = 40
	DefaultDevSignKey       = "intern-match-dev-key"
	DefaultDevIssuer        = "intern-match-dev"
	DefaultDevTokenTTL      = 24 * time.Hour
)

// DevServerConfig is the configuration of the fake remote data source.
type DevServerConfig struct {
	Address     string
	RateLimit   float64
	Burst       int
	FailureRate float64
	SignKey     string
	Issuer      string
	TokenTTL    time.Duration
}

// GetDevServerConfig builds and validates the dev server view of the
// merged structured configuration loaded with args.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		Address:     cfg.DevServer.Address,
		RateLimit:   cfg.DevServer.RateLimit,
		Burst:       cfg.DevServer.Burst,
		FailureRate: cfg.DevServer.FailureRate,
		SignKey:     cfg.DevServer.SignKey,
		Issuer:      cfg.DevServer.Issuer,
		TokenTTL:    cfg.DevServer.TokenTTL,
	}
	if devCfg.Address == "" {
		devCfg.Address = DefaultDevServerAddress
	}
	if devCfg.RateLimit == 0 {
		devCfg.RateLimit = DefaultDevRateLimit
	}
	if devCfg.Burst == 0 {
		devCfg.Burst = DefaultDevBurst
	}
	if devCfg.SignKey == "" {
		devCfg.SignKey = DefaultDevSignKey
	}
	if devCfg.Issuer == "" {
		devCfg.Issuer = DefaultDevIssuer
	}
	if devCfg.TokenTTL == 0 {
		devCfg.TokenTTL = DefaultDevTokenTTL
	}

	return devCfg, devCfg.validate()
}
