package tui

import (
	"github.com/MKhiriev/agent-chat/internal/session"
	"github.com/MKhiriev/agent-chat/models"
)

type replyMsg struct {
	result session.Result
}

type healthMsg struct {
	health models.HealthResponse
	err    error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
