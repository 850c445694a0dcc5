package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/agent-chat/internal/adapter"
	"github.com/MKhiriev/agent-chat/internal/session"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// healthTimeout bounds the start-up probe so a silent agent does not leave the
// header in the "checking" state.
const healthTimeout = 5 * time.Second

const statusDisplayTime = 2 * time.Second

func cmdRequest(ctx context.Context, sess *session.Session, exchange session.Exchange) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{result: sess.Request(ctx, exchange)}
	}
}

func cmdHealth(ctx context.Context, agent adapter.AgentAdapter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, healthTimeout)
		defer cancel()

		health, err := agent.Health(ctx)
		return healthMsg{health: health, err: err}
	}
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDisplayTime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
