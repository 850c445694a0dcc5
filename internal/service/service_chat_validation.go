package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agent-chat/internal/validators"
	"github.com/MKhiriev/agent-chat/models"
)

type ChatValidationService struct {
	inner     ChatService
	validator validators.Validator
}

func NewChatValidationService() ChatServiceWrapper {
	return &ChatValidationService{
		validator: validators.NewChatValidator(),
	}
}

func (v *ChatValidationService) Reply(ctx context.Context, message string) (string, error) {
	if err := v.validator.Validate(ctx, models.ChatRequest{Message: message}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Reply(ctx, message)
}

func (v *ChatValidationService) Wrap(wrapped ChatService) ChatService {
	v.inner = wrapped
	return v
}
