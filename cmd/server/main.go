package main

import (
	"fmt"

	"github.com/MKhiriev/go-web-sdk-demo/internal/adapter"
	"github.com/MKhiriev/go-web-sdk-demo/internal/config"
	"github.com/MKhiriev/go-web-sdk-demo/internal/handler"
	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
	"github.com/MKhiriev/go-web-sdk-demo/internal/render"
	"github.com/MKhiriev/go-web-sdk-demo/internal/sdkconfig"
	"github.com/MKhiriev/go-web-sdk-demo/internal/server"
	"github.com/MKhiriev/go-web-sdk-demo/internal/service"
	"github.com/MKhiriev/go-web-sdk-demo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("web-sdk-demo")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.Leveled(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	store := sdkconfig.NewFileStore(cfg.Checkout.ConfigPath)
	tokens := adapter.NewHTTPTokenAdapter(cfg.Adapter, log)

	renderer, err := render.NewPageRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating page renderer")
	}

	services, err := service.NewServices(*cfg, store, tokens, renderer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("preset", cfg.Checkout.Preset).
		Str("checkout_config", cfg.Checkout.ConfigPath).
		Msg("starting checkout demo server")
	srv.RunServer()
}
