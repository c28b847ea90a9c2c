// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "invalid host", input: "not-an-ip:8080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "api.example.com",
		"-listen", "127.0.0.1:9000",
		"-d", "local.db",
		"-config", "cfg.json",
		"-token", "tkn",
		"-log", "client.log",
		"-request-timeout", "5s",
		"-sync-interval", "1m",
		"-max-retries", "4",
		"-retry-base-delay", "500ms",
		"-page-size", "20",
		"-debounce", "2s",
		"-metrics-address", "localhost:9100",
	})
	require.NoError(t, err)

	assert.Equal(t, "api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9000", cfg.DevServer.Address)
	assert.Equal(t, "local.db", cfg.Storage.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "tkn", cfg.App.Token)
	assert.Equal(t, "client.log", cfg.App.LogPath)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 4, cfg.Sync.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.RetryBaseDelay)
	assert.Equal(t, 20, cfg.Sync.FeedPageSize)
	assert.Equal(t, 2*time.Second, cfg.Drafts.Debounce)
	assert.Equal(t, "localhost:9100", cfg.Debug.MetricsAddress)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidListenAddress(t *testing.T) {
	_, err := parseFlags([]string{"-listen", "nowhere"})
	assert.Error(t, err)
}
