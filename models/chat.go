// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRequest is the JSON body sent to the agent's POST /chat endpoint.
type ChatRequest struct {
	// Message is the user's text, forwarded verbatim.
	Message string `json:"message"`
}

// ChatResponse is the JSON body returned by the agent's POST /chat endpoint.
// Only Response is consumed by the client; other fields are ignored.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the JSON body the agent returns for rejected requests.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the JSON body returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// Healthy reports whether the agent declared itself healthy.
func (h HealthResponse) Healthy() bool {
	return h.Status == "healthy"
}
