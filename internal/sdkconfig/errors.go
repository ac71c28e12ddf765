// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdkconfig

import "errors"

// Load errors. Both are terminal for the current request only.
var (
	// ErrConfigUnreadable is returned when the checkout document cannot be
	// opened or read (missing file, permissions).
	ErrConfigUnreadable = errors.New("checkout config unreadable")

	// ErrConfigMalformed is returned when the checkout document is not valid
	// TOML, a field has the wrong type, or a required field is missing.
	ErrConfigMalformed = errors.New("checkout config malformed")
)
