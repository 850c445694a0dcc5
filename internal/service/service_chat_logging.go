package service

import (
	"context"
	"time"

	"github.com/MKhiriev/agent-chat/internal/logger"
)

type ChatLoggingService struct {
	inner ChatService
}

func NewChatLoggingService() ChatServiceWrapper {
	return &ChatLoggingService{}
}

// Reply logs through the request-scoped logger so entries carry the trace id.
func (l *ChatLoggingService) Reply(ctx context.Context, message string) (string, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	reply, err := l.inner.Reply(ctx, message)
	if err != nil {
		log.Err(err).Int("message_len", len(message)).Dur("elapsed", time.Since(start)).Msg("chat reply failed")
		return "", err
	}

	log.Info().Int("message_len", len(message)).Int("reply_len", len(reply)).Dur("elapsed", time.Since(start)).Msg("chat reply produced")
	return reply, nil
}

func (l *ChatLoggingService) Wrap(wrapped ChatService) ChatService {
	l.inner = wrapped
	return l
}
