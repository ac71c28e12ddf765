package http

import (
	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
	"github.com/MKhiriev/go-web-sdk-demo/internal/service"
	"github.com/MKhiriev/go-web-sdk-demo/internal/utils"
	"github.com/MKhiriev/go-web-sdk-demo/models"
)

type Handler struct {
	services *service.Services
	preset   models.Preset
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, preset models.Preset, logger *logger.Logger) *Handler {
	logger.Info().Str("preset", preset.Name).Msg("http handler created")
	return &Handler{
		services: services,
		preset:   preset,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
