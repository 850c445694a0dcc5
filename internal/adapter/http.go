// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/agent-chat/internal/config"
	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/internal/utils"
	"github.com/MKhiriev/agent-chat/models"
	"github.com/tidwall/gjson"
)

const (
	chatPath   = "/chat"
	healthPath = "/health"

	responseField = "response"
)

type httpAgentAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAgentAdapter constructs an HTTP/REST implementation of [AgentAdapter].
// It normalises and validates the base URL from cfg.Address and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid URL.
func NewHTTPAgentAdapter(cfg config.ClientAgent, logger *logger.Logger) (AgentAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid agent address: %w", err)
	}

	return &httpAgentAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Chat implements [AgentAdapter]. It POSTs {"message": message} to /chat and
// extracts the "response" field from the reply. Unknown fields are ignored.
func (h *httpAgentAdapter) Chat(ctx context.Context, message string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ChatRequest{Message: message}).
		Post(chatPath)
	if err != nil {
		h.logger.Err(err).Msg("chat request failed")
		return "", fmt.Errorf("%w: chat request: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Int("status", resp.StatusCode()).Msg("agent rejected chat request")
		return "", err
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		h.logger.Error().Int("status", resp.StatusCode()).Msg("agent returned a non-JSON body")
		return "", fmt.Errorf("%w: %w: body is not JSON", ErrRequestFailed, ErrMalformedResponse)
	}

	reply := gjson.GetBytes(body, responseField)
	if !reply.Exists() {
		h.logger.Warn().Msg("agent reply has no response field")
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("chat reply received")

	return reply.String(), nil
}

// Health implements [AgentAdapter]. It GETs /health and decodes the status
// document.
func (h *httpAgentAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("%w: health request: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("%w: %w: %w", ErrRequestFailed, ErrMalformedResponse, err)
	}

	return health, nil
}
