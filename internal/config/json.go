// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings like "30s".
type StructuredJSONConfig struct {
	App struct {
		Token   string `json:"token"`
		Version string `json:"version"`
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Sync struct {
		Interval       Duration `json:"interval"`
		MaxRetries     int      `json:"max_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		FeedPageSize   int      `json:"feed_page_size"`
	} `json:"sync,omitempty"`

	Drafts struct {
		Debounce Duration `json:"debounce"`
	} `json:"drafts,omitempty"`

	Debug struct {
		MetricsAddress string `json:"metrics_address"`
	} `json:"debug,omitempty"`

	DevServer struct {
		Address     string   `json:"address"`
		RateLimit   float64  `json:"rate_limit"`
		Burst       int      `json:"burst"`
		FailureRate float64  `json:"failure_rate"`
		SignKey     string   `json:"sign_key"`
		Issuer      string   `json:"issuer"`
		TokenTTL    Duration `json:"token_ttl"`
	} `json:"dev_server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:   jsonCfg.App.Token,
			Version: jsonCfg.App.Version,
			LogPath: jsonCfg.App.LogPath,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Sync: Sync{
			Interval:       time.Duration(jsonCfg.Sync.Interval),
			MaxRetries:     jsonCfg.Sync.MaxRetries,
			RetryBaseDelay: time.Duration(jsonCfg.Sync.RetryBaseDelay),
			FeedPageSize:   jsonCfg.Sync.FeedPageSize,
		},
		Drafts: Drafts{
			Debounce: time.Duration(jsonCfg.Drafts.Debounce),
		},
		Debug: Debug{
			MetricsAddress: jsonCfg.Debug.MetricsAddress,
		},
		DevServer: DevServer{
			Address:     jsonCfg.DevServer.Address,
			RateLimit:   jsonCfg.DevServer.RateLimit,
			Burst:       jsonCfg.DevServer.Burst,
			FailureRate: jsonCfg.DevServer.FailureRate,
			SignKey:     jsonCfg.DevServer.SignKey,
			Issuer:      jsonCfg.DevServer.Issuer,
			TokenTTL:    time.Duration(jsonCfg.DevServer.TokenTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
