// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version and log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Checkout selects the demo preset and the checkout document path.
	Checkout Checkout `envPrefix:"CHECKOUT_"`

	// Adapter holds settings of the outbound upstream API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:9797").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Zero disables the bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Checkout selects which of the demo variants is served and where its
// checkout document is read from.
type Checkout struct {
	// Preset is "digital-wallets" or "hosted-fields".
	// Env: CHECKOUT_PRESET
	Preset string `env:"PRESET"`

	// ConfigPath is the path of the TOML checkout document. When empty the
	// preset's default file name in the working directory is used.
	// Env: CHECKOUT_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`
}

// Adapter holds settings of the upstream API client.
type Adapter struct {
	// RequestTimeout bounds a single access-token request. Zero keeps the
	// transport default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration from flags, environment variables and the optional JSON
// file, in that priority order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
