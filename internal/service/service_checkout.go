// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-web-sdk-demo/internal/adapter"
	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
	"github.com/MKhiriev/go-web-sdk-demo/internal/render"
	"github.com/MKhiriev/go-web-sdk-demo/internal/sdkconfig"
	"github.com/MKhiriev/go-web-sdk-demo/models"
)

type checkoutService struct {
	store    ConfigStore
	tokens   adapter.TokenAdapter
	renderer PageRenderer
	preset   models.Preset

	logger *logger.Logger
}

func NewCheckoutService(store ConfigStore, tokens adapter.TokenAdapter, renderer PageRenderer, preset models.Preset, logger *logger.Logger) CheckoutService {
	return &checkoutService{
		store:    store,
		tokens:   tokens,
		renderer: renderer,
		preset:   preset,
		logger:   logger,
	}
}

func (s *checkoutService) IndexPage(ctx context.Context) ([]byte, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	return s.renderer.RenderIndexPage(s.preset, cfg.Host(), cfg.SDKVersion)
}

func (s *checkoutService) Stylesheet(ctx context.Context) ([]byte, error) {
	if s.preset.StylesheetLoadsConfig {
		if _, err := s.loadConfig(ctx); err != nil {
			return nil, err
		}
	}

	return s.renderer.RenderStylesheet(), nil
}

func (s *checkoutService) ClientScript(ctx context.Context) ([]byte, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	baseURL := sdkconfig.ResolveAPIURL(cfg)
	if !sdkconfig.HasEnvironment(cfg) {
		s.logger.Warn().
			Str("path", s.store.Path()).
			Str("environment", cfg.Environment).
			Msg("environment is not listed in environments, upstream api url is empty")
	}

	token, err := s.tokens.IssueAccessToken(ctx, baseURL, cfg.SecretKey, s.preset.TokenKind)
	if err != nil {
		url := baseURL + "/access-tokens"
		var issuanceErr *adapter.TokenIssuanceError
		if errors.As(err, &issuanceErr) {
			url = issuanceErr.URL
		}
		s.logger.Err(err).
			Str("url", url).
			Str("kind", s.preset.TokenKind.String()).
			Msg("could not fetch access token")
		return nil, err
	}

	return s.renderer.RenderClientScript(s.preset, render.ScriptContext{
		UseFlatURLs:     cfg.UsesFlatURLs(),
		AccessToken:     token.AccessToken,
		Environment:     cfg.Environment,
		MainAPIURL:      cfg.APIURL,
		TokenizerAPIURL: cfg.TokenizerURL,
	})
}

// loadConfig reads the checkout document and logs the failure with the
// document path. The secret key never reaches the log.
func (s *checkoutService) loadConfig(ctx context.Context) (models.CheckoutConfig, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("path", s.store.Path()).
			Msg("unable to load checkout config")
		return models.CheckoutConfig{}, err
	}

	return cfg, nil
}
