package http

import (
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/pdf"
	"github.com/MKhiriev/go-invoice-maker/internal/service"
)

type Handler struct {
	services *service.Services
	renderer *pdf.Renderer

	templates *templateSet
	logger    *logger.Logger
}

func NewHandler(services *service.Services, renderer *pdf.Renderer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		renderer:  renderer,
		templates: mustParseTemplates(),
		logger:    logger,
	}
}
