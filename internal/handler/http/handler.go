package http

import (
	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/internal/service"
)

// Handler serves the agent's REST surface on top of the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler only stores its dependencies; routes are built by Init.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("agent http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
