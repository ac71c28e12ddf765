// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdkconfig

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

var requiredKeys = []string{"sdk_version", "secret_key", "environments"}

// validate reports every required key absent from the decoded document.
// Presence is checked on the TOML metadata, so an explicitly empty string
// still counts as present.
func validate(md toml.MetaData) error {
	var errs []error
	for _, key := range requiredKeys {
		if !md.IsDefined(key) {
			errs = append(errs, fmt.Errorf("missing required key `%s`", key))
		}
	}

	if md.IsDefined("environments") {
		for _, name := range environmentNames(md) {
			if !md.IsDefined("environments", name, "api_url") {
				errs = append(errs, fmt.Errorf("missing required key `environments.%s.api_url`", name))
			}
		}
	}

	return errors.Join(errs...)
}

// environmentNames lists the tables defined directly under [environments].
func environmentNames(md toml.MetaData) []string {
	seen := make(map[string]struct{})
	for _, key := range md.Keys() {
		if len(key) >= 2 && key[0] == "environments" {
			seen[key[1]] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
