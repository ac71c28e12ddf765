package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing or malformed listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCheckoutConfigs indicates an unknown preset or an empty
	// checkout document path.
	ErrInvalidCheckoutConfigs = errors.New("invalid checkout configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates a negative upstream timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
