package tui

import "github.com/charmbracelet/lipgloss"

const maxOverlayWidth = 72

type errorOverlayModel struct {
	message string
}

// View renders the message wrapped to fit width.
func (m errorOverlayModel) View(width int) string {
	textWidth := min(width, maxOverlayWidth) - overlayBoxStyle.GetHorizontalFrameSize()
	text := m.message
	if textWidth > 0 {
		text = lipgloss.NewStyle().Width(textWidth).Render(m.message)
	}

	hint := helpStyle.Render(keys.send.Help().Key + " / " + keys.esc.Help().Key + ": close")
	return overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render("Error"), "", text, "", hint))
}
