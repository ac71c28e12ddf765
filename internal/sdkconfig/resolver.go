// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdkconfig

import "github.com/MKhiriev/go-web-sdk-demo/models"

// ResolveAPIURL returns the effective upstream API base URL.
//
// With an empty environment the flat api_url is returned verbatim, even when
// it is empty. Otherwise the named environment's api_url is returned, or ""
// when the name is not present in environments.
func ResolveAPIURL(cfg models.CheckoutConfig) string {
	if cfg.UsesFlatURLs() {
		return cfg.APIURL
	}

	env, ok := cfg.Environments[cfg.Environment]
	if !ok {
		return ""
	}

	return env.APIURL
}

// HasEnvironment reports whether the selected environment is either empty
// or present in environments.
func HasEnvironment(cfg models.CheckoutConfig) bool {
	if cfg.UsesFlatURLs() {
		return true
	}
	_, ok := cfg.Environments[cfg.Environment]
	return ok
}
