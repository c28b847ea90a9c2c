package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing or malformed remote
	// address or a negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates negative retry settings.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidDraftConfigs indicates a negative debounce window.
	ErrInvalidDraftConfigs = errors.New("invalid drafts configuration")
	// ErrInvalidDevServerConfigs indicates invalid fake server settings.
	ErrInvalidDevServerConfigs = errors.New("invalid dev server configuration")
)
