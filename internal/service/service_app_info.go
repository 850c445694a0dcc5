package service

import (
	"context"
	"time"

	"github.com/MKhiriev/agent-chat/internal/config"
	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/models"
)

const healthyStatus = "healthy"

type appInfoService struct {
	appVersion  string
	serviceName string
	now         func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if cfg.ServiceName == "" {
		return nil, ErrServiceNameIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		serviceName: cfg.ServiceName,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health always reports healthy: a process able to answer is alive.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    healthyStatus,
		Service:   s.serviceName,
		Timestamp: s.now().Format(time.RFC3339),
	}
}
