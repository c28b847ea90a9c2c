// Package server runs the development server that stands in for the
// platform's remote data source.
//
// It covers startup, signal handling and graceful shutdown of the HTTP
// listener.
package server
