package service

import (
	"github.com/MKhiriev/go-web-sdk-demo/internal/adapter"
	"github.com/MKhiriev/go-web-sdk-demo/internal/config"
	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
)

type Services struct {
	AppInfoService  AppInfoService
	CheckoutService CheckoutService
}

func NewServices(cfg config.StructuredConfig, store ConfigStore, tokens adapter.TokenAdapter, renderer PageRenderer, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:  appInfoService,
		CheckoutService: NewCheckoutService(store, tokens, renderer, cfg.Preset(), logger),
	}, nil
}
