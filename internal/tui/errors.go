// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/agent-chat/internal/adapter"
)

// unreachableMarkers are transport error fragments that mean the agent could
// not be contacted at all.
var unreachableMarkers = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
}

// humanizeAgentUnavailableError turns a health probe failure into a short
// header note.
func humanizeAgentUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "agent did not answer in time"
	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return "agent unavailable"
	case errors.Is(err, adapter.ErrNotFound):
		return "no health endpoint"
	case errors.As(err, &netErr):
		return "agent unreachable"
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range unreachableMarkers {
		if strings.Contains(msg, marker) {
			return "agent unreachable"
		}
	}

	return err.Error()
}
