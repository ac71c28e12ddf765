// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Preset names accepted by [PresetByName].
const (
	PresetDigitalWallets = "digital-wallets"
	PresetHostedFields   = "hosted-fields"
)

// ErrUnknownPreset is returned by [PresetByName] for an unsupported name.
var ErrUnknownPreset = errors.New("unknown checkout preset")

// Preset bundles everything that differs between the two checkout demos:
// the client script route, the token request shape and the SDK component
// embedded in the index page.
type Preset struct {
	// Name is the preset identifier, e.g. "digital-wallets".
	Name string

	// Title is shown as the index page header.
	Title string

	// ScriptRoute is the path the client script is served from.
	ScriptRoute string

	// Component is the SDK component script name without the ".min.js" suffix.
	Component string

	// TokenKind selects the access-token request body.
	TokenKind TokenRequestKind

	// DefaultConfigPath is used when no checkout document path is configured.
	DefaultConfigPath string

	// StylesheetLoadsConfig makes the stylesheet route fail with 500 when the
	// checkout document cannot be loaded.
	StylesheetLoadsConfig bool
}

var presets = map[string]Preset{
	PresetDigitalWallets: {
		Name:              PresetDigitalWallets,
		Title:             "Web SDK Example (Digital Wallets)",
		ScriptRoute:       "/index.js",
		Component:         "digital-wallets",
		TokenKind:         OneTimePassword,
		DefaultConfigPath: "dw-config.toml",
	},
	PresetHostedFields: {
		Name:                  PresetHostedFields,
		Title:                 "Web SDK Example (Hosted Fields)",
		ScriptRoute:           "/app.js",
		Component:             "hosted-fields",
		TokenKind:             LimitedScope,
		DefaultConfigPath:     "hf-config.toml",
		StylesheetLoadsConfig: true,
	},
}

// PresetByName returns the preset registered under name.
func PresetByName(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// ScriptName returns the client script file name as referenced from the
// index page, i.e. ScriptRoute without the leading slash.
func (p Preset) ScriptName() string {
	if len(p.ScriptRoute) > 0 && p.ScriptRoute[0] == '/' {
		return p.ScriptRoute[1:]
	}
	return p.ScriptRoute
}
