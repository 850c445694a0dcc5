// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/agent-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatValidator(t *testing.T) {
	v := NewChatValidator()
	require.NotNil(t, v)

	var _ Validator = v
}

func TestChatValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: models.ChatRequest{Message: "status"}},
		{name: "valid pointer", obj: &models.ChatRequest{Message: "help"}},
		{name: "multi line", obj: models.ChatRequest{Message: "line1\nline2"}},
		{name: "empty", obj: models.ChatRequest{}, wantErr: ErrEmptyMessage},
		{name: "whitespace", obj: models.ChatRequest{Message: " \t\n"}, wantErr: ErrEmptyMessage},
		{name: "nil pointer", obj: (*models.ChatRequest)(nil), wantErr: ErrEmptyMessage},
		{name: "too long", obj: models.ChatRequest{Message: strings.Repeat("a", MaxMessageLength+1)}, wantErr: ErrMessageTooLong},
		{name: "limit counts runes", obj: models.ChatRequest{Message: strings.Repeat("я", MaxMessageLength)}},
		{name: "only length checked", obj: models.ChatRequest{}, fields: []string{FieldMessageLength}},
		{name: "unknown field", obj: models.ChatRequest{Message: "x"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: "status", wantErr: ErrUnsupportedType},
	}

	v := NewChatValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
