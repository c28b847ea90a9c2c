// Package http implements the HTTP API of the development server.
//
// It serves the endpoints the dashboard client polls and mutates,
// backed by an in-memory [Backend]. Request IDs, access logging,
// per-client rate limiting, bearer-token authentication and optional
// failure injection are handled here before requests reach the backend.
package http
