package tui

import (
	"strings"

	"github.com/MKhiriev/agent-chat/internal/render"
	"github.com/MKhiriev/agent-chat/internal/session"
	"github.com/MKhiriev/agent-chat/models"
)

const (
	userLabel  = "You"
	agentLabel = "Agent"
)

// renderTranscript draws blocks top to bottom. Each message gets a header
// with its origin and time; continuation lines are indented under it.
func renderTranscript(blocks []render.Block, spinnerView string) string {
	var b strings.Builder

	errorID := ""
	for i, block := range blocks {
		if block.Thinking {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(agentLabelStyle.Render(agentLabel))
			b.WriteString("\n  ")
			b.WriteString(spinnerView)
			b.WriteString(" ")
			b.WriteString(thinkingStyle.Render(block.Text))
			b.WriteString("\n")
			continue
		}

		if block.Time != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(originLabel(block.Origin))
			b.WriteString(" ")
			b.WriteString(timeStyle.Render(block.Time))
			b.WriteString("\n")

			errorID = ""
			if block.Origin == models.OriginAgent && strings.HasPrefix(block.Text, session.ErrorMarker) {
				errorID = block.MessageID
			}
		}

		b.WriteString("  ")
		if errorID != "" && errorID == block.MessageID {
			b.WriteString(errorStyle.Render(block.Text))
		} else {
			b.WriteString(block.Text)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func originLabel(origin models.Origin) string {
	if origin == models.OriginUser {
		return userLabelStyle.Render(userLabel)
	}
	return agentLabelStyle.Render(agentLabel)
}
