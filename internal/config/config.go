// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the HTTP transport to the remote data source.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the durable local storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds polling and retry settings shared by every sync session.
	Sync Sync `envPrefix:"SYNC_"`

	// Drafts holds settings of debounced draft persistence.
	Drafts Drafts `envPrefix:"DRAFTS_"`

	// Debug holds optional diagnostics endpoints.
	Debug Debug `envPrefix:"DEBUG_"`

	// DevServer holds settings of the fake remote data source.
	DevServer DevServer `envPrefix:"DEVSERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds identity and process-level settings.
type App struct {
	// Token is the bearer token attached to every remote request. The owner
	// of scoped local state is derived from its "sub" claim.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogPath is the file the client appends its logs to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds settings of the HTTP transport to the remote data source.
type Adapter struct {
	// HTTPAddress is the base address of the remote data source
	// (e.g. "localhost:8080" or "https://api.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the durable local storage settings.
type Storage struct {
	// DSN selects the backend: ":memory:" for an in-memory store, a path
	// ending in ".json" for a JSON document file, anything else is opened
	// as a SQLite database file.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Sync holds polling and retry settings.
type Sync struct {
	// Interval is the period between silent refreshes. A negative value
	// disables periodic refresh.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxRetries is the number of silent retries after a failed fetch.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// RetryBaseDelay is the linear backoff unit; the Nth retry waits
	// N × RetryBaseDelay.
	// Env: SYNC_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// FeedPageSize is the number of notifications requested per poll.
	// Env: SYNC_FEED_PAGE_SIZE
	FeedPageSize int `env:"FEED_PAGE_SIZE"`
}

// Drafts holds settings of debounced draft persistence.
type Drafts struct {
	// Debounce is the quiet period after the last edit before a draft is
	// written to local storage.
	// Env: DRAFTS_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Debug holds optional diagnostics endpoints.
type Debug struct {
	// MetricsAddress, when set, serves Prometheus metrics on host:port.
	// Env: DEBUG_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// DevServer holds settings of the fake remote data source.
type DevServer struct {
	// Address is the listen address in host:port form.
	// Env: DEVSERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RateLimit is the sustained per-client request rate (requests/second).
	// Env: DEVSERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// Burst is the per-client burst size.
	// Env: DEVSERVER_BURST
	Burst int `env:"BURST"`

	// FailureRate in [0,1] makes the server fail that share of notification
	// fetches with 503, for exercising client retries.
	// Env: DEVSERVER_FAILURE_RATE
	FailureRate float64 `env:"FAILURE_RATE"`

	// SignKey is the HMAC key for bearer tokens issued and accepted by the
	// dev server.
	// Env: DEVSERVER_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// Issuer is the "iss" claim of dev tokens.
	// Env: DEVSERVER_ISSUER
	Issuer string `env:"ISSUER"`

	// TokenTTL is the lifetime of the dev token printed at start-up.
	// Env: DEVSERVER_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
