package service

import (
	"context"

	"github.com/MKhiriev/agent-chat/models"
)

// ChatService answers chat messages on behalf of the agent.
type ChatService interface {
	// Reply returns the agent's answer to message.
	Reply(ctx context.Context, message string) (string, error)
}

// AppInfoService reports identification and liveness of the agent.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// ChatServiceWrapper defines middleware composition for ChatService.
// Implementations wrap an existing ChatService to add behavior such as
// logging or validating.
type ChatServiceWrapper interface {
	Wrap(ChatService) ChatService // returns a decorated ChatService applying additional behavior
}
