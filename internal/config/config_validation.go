// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-web-sdk-demo/models"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can start the
// server. All violations are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		errs = append(errs, fmt.Errorf("%w: address %q: %w", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs))
	}

	if _, err := models.PresetByName(cfg.Checkout.Preset); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidCheckoutConfigs, err))
	}
	if cfg.Checkout.ConfigPath == "" {
		errs = append(errs, fmt.Errorf("%w: empty checkout config path", ErrInvalidCheckoutConfigs))
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}

	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs))
	}

	return errors.Join(errs...)
}

// Preset returns the checkout preset selected by the configuration. It is
// only meaningful on a validated config.
func (cfg *StructuredConfig) Preset() models.Preset {
	preset, _ := models.PresetByName(cfg.Checkout.Preset)
	return preset
}
