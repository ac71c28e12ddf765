// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sdkconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/MKhiriev/go-web-sdk-demo/models"
)

// Load reads and parses the checkout document at path and checks that the
// required keys are present.
//
// Errors wrap [ErrConfigUnreadable] or [ErrConfigMalformed].
func Load(path string) (models.CheckoutConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return models.CheckoutConfig{}, fmt.Errorf("%w: could not read file `%s`: %w", ErrConfigUnreadable, path, err)
	}

	var cfg models.CheckoutConfig
	md, err := toml.Decode(string(contents), &cfg)
	if err != nil {
		return models.CheckoutConfig{}, fmt.Errorf("%w: unable to load data from `%s`: %w", ErrConfigMalformed, path, err)
	}

	if err = validate(md); err != nil {
		return models.CheckoutConfig{}, fmt.Errorf("%w: `%s`: %w", ErrConfigMalformed, path, err)
	}

	return cfg, nil
}

// FileStore loads the checkout document from a fixed path. The zero value is
// not usable; construct it with [NewFileStore].
type FileStore struct {
	path string
}

// NewFileStore returns a store bound to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document path the store reads.
func (s *FileStore) Path() string {
	return s.path
}

// Load re-reads the document on every call.
func (s *FileStore) Load(_ context.Context) (models.CheckoutConfig, error) {
	return Load(s.path)
}
