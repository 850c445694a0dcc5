// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat agent.
//
// The primary abstraction is [AgentAdapter], which decouples the conversation
// session from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAgentAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrInternalServerError] for 500). Every failure returned by
// the adapter also matches [ErrRequestFailed].
package adapter

import (
	"context"

	"github.com/MKhiriev/agent-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/agent_adapter_mock.go -package=mock

// AgentAdapter defines transport-agnostic communication with the agent.
type AgentAdapter interface {
	// Chat sends message to the agent verbatim and returns its reply.
	// A reply body without a "response" field yields an empty string.
	// Transport errors, non-2xx statuses and non-JSON bodies are returned
	// as errors wrapping [ErrRequestFailed].
	Chat(ctx context.Context, message string) (string, error)

	// Health queries the agent's health endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)
}
