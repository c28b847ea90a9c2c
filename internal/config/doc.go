// Package config provides configuration loading, merging, and validation
// facilities for the dashboard client and the development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the dashboard client and
// [GetDevServerConfig] for the fake remote data source.
package config
