package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/agent-chat/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldMessage requires a message with at least one non-space character.
	FieldMessage = "message"

	// FieldMessageLength caps the message at MaxMessageLength runes.
	FieldMessageLength = "message_length"
)

// MaxMessageLength is the longest message the agent accepts, in runes.
const MaxMessageLength = 4000

// ChatValidator implements the Validator interface for chat requests.
type ChatValidator struct{}

// NewChatValidator returns a validator for [models.ChatRequest].
func NewChatValidator() *ChatValidator {
	return &ChatValidator{}
}

// Validate accepts models.ChatRequest or *models.ChatRequest. When fields
// is empty, every field is checked.
func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		if value == nil {
			return ErrEmptyMessage
		}
		return v.validateChatRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ChatValidator) validateChatRequest(_ context.Context, req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldMessageLength}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return ErrEmptyMessage
			}
		case FieldMessageLength:
			if n := utf8.RuneCountInString(req.Message); n > MaxMessageLength {
				return fmt.Errorf("%w: %d runes, limit %d", ErrMessageTooLong, n, MaxMessageLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
