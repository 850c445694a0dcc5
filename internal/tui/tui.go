package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agent-chat/internal/adapter"
	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/internal/session"
	"github.com/MKhiriev/agent-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the chat screen.
type Options struct {
	// RenderMarkdown renders agent replies with glamour.
	RenderMarkdown bool
	// MarkdownStyle is the glamour style name.
	MarkdownStyle string
	// AgentAddress is shown in the about window.
	AgentAddress string
	// BuildInfo is shown in the about window.
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	session *session.Session
	agent   adapter.AgentAdapter
	opts    Options
	logger  *logger.Logger
}

func New(sess *session.Session, agent adapter.AgentAdapter, opts Options, logger *logger.Logger) (*TUI, error) {
	if sess == nil || agent == nil {
		return nil, fmt.Errorf("tui: session and agent are required")
	}
	return &TUI{session: sess, agent: agent, opts: opts, logger: logger}, nil
}

// Run shows the chat screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newChatModel(ctx, t.session, t.agent, t.opts, t.logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run chat ui: %w", err)
	}
	return nil
}
