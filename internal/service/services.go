package service

import (
	"fmt"

	"github.com/MKhiriev/agent-chat/internal/config"
	"github.com/MKhiriev/agent-chat/internal/logger"
)

type Services struct {
	ChatService    ChatService
	AppInfoService AppInfoService
}

// NewServices assembles the agent services. Wrappers apply outermost first:
// logging sees every request, validation runs before the responder.
func NewServices(cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	chat := NewChatService(cfg.App, logger)
	for _, wrapper := range []ChatServiceWrapper{NewChatValidationService(), NewChatLoggingService()} {
		chat = wrapper.Wrap(chat)
	}

	return &Services{
		ChatService:    chat,
		AppInfoService: appInfo,
	}, nil
}
