// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trace-1", traceID)
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	traceID, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, traceID)
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetTraceIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "")

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}
