// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultSDKHost is the provider host the SDK scripts are served from when
// the checkout document does not set sdkHost.
const DefaultSDKHost = "web-sdk.seamlesspay.com"

// CheckoutConfig is the checkout document read from disk on every request.
// It is immutable once loaded.
//
// Keys in the TOML document use the same snake_case names as the struct
// tags below.
type CheckoutConfig struct {
	// SDKVersion selects which SDK build is embedded in the index page.
	// Required.
	SDKVersion string `toml:"sdk_version"`

	// SDKHost overrides the host the SDK scripts are loaded from.
	// Falls back to [DefaultSDKHost] when empty.
	SDKHost string `toml:"sdk_host"`

	// SecretKey is the server-side credential exchanged for an access token.
	// Required. It must never reach a response body or a log line.
	SecretKey string `toml:"secret_key"`

	// Environment names the entry of Environments to use. An empty value
	// means the flat APIURL / TokenizerURL fields apply.
	Environment string `toml:"environment"`

	// APIURL is the flat upstream API base URL used when Environment is empty.
	APIURL string `toml:"api_url"`

	// TokenizerURL is the flat tokenizer base URL used when Environment is empty.
	TokenizerURL string `toml:"tokenizer_url"`

	// Environments maps an environment name to its upstream deployment.
	// Required, may be empty.
	Environments map[string]Environment `toml:"environments"`
}

// Environment is a named upstream deployment target.
type Environment struct {
	APIURL string `toml:"api_url"`
}

// Host returns the SDK host, falling back to [DefaultSDKHost].
func (c CheckoutConfig) Host() string {
	if c.SDKHost == "" {
		return DefaultSDKHost
	}
	return c.SDKHost
}

// UsesFlatURLs reports whether the flat APIURL / TokenizerURL fields are in
// effect, i.e. no named environment is selected.
func (c CheckoutConfig) UsesFlatURLs() bool {
	return c.Environment == ""
}
