// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a remote data source address (client) in format [host]:[port]
//	-listen dev server listen address in format [host]:[port]
//	-d local storage DSN
//	-c/-config json file path with configs
//	-token bearer token
//	-log log file path
//	-request-timeout request timeout (e.g., "15s")
//	-sync-interval period between silent refreshes (e.g., "30s")
//	-max-retries retries after a failed fetch
//	-retry-base-delay linear backoff unit (e.g., "1s")
//	-page-size notifications per poll
//	-debounce draft debounce window (e.g., "1s")
//	-metrics-address Prometheus metrics listen address
//	-sign-key dev server token signing key
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("intern-match", flag.ContinueOnError)

	var listenAddress NetAddress
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Remote data source address")
	fs.Var(&listenAddress, "listen", "Dev server listen address host:port")
	fs.StringVar(&cfg.Storage.DSN, "d", "", "Local storage DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Token, "token", "", "Bearer token")
	fs.StringVar(&cfg.App.LogPath, "log", "", "Log file path")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&cfg.Sync.Interval, "sync-interval", 0, "Period between silent refreshes (e.g., 30s)")
	fs.IntVar(&cfg.Sync.MaxRetries, "max-retries", 0, "Retries after a failed fetch")
	fs.DurationVar(&cfg.Sync.RetryBaseDelay, "retry-base-delay", 0, "Linear backoff unit (e.g., 1s)")
	fs.IntVar(&cfg.Sync.FeedPageSize, "page-size", 0, "Notifications per poll")
	fs.DurationVar(&cfg.Drafts.Debounce, "debounce", 0, "Draft debounce window (e.g., 1s)")
	fs.StringVar(&cfg.Debug.MetricsAddress, "metrics-address", "", "Prometheus metrics listen address")
	fs.StringVar(&cfg.DevServer.SignKey, "sign-key", "", "Dev server token signing key")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.DevServer.Address = listenAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
