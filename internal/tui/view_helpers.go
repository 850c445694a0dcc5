package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minDividerWidth = 20
	maxDividerWidth = 60
)

type pageField struct {
	label string
	value string
}

var pageBodyStyle = lipgloss.NewStyle().PaddingLeft(2)

// renderPage draws a titled page with aligned "label: value" rows framed by
// dividers sized to width.
func renderPage(title string, fields []pageField, hotKeys string, width int) string {
	divider := pageBodyStyle.Render(strings.Repeat("─", clamp(width-4, minDividerWidth, maxDividerWidth)))

	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}

	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		label := lipgloss.NewStyle().Width(labelWidth + 2).Render(f.label + ":")
		rows = append(rows, label+f.value)
	}
	body := "-"
	if len(rows) > 0 {
		body = strings.Join(rows, "\n")
	}

	parts := []string{titleStyle.Render(title), divider, "", pageBodyStyle.Render(body), "", divider}
	if strings.TrimSpace(hotKeys) != "" {
		parts = append(parts, pageBodyStyle.Render(helpStyle.Render(hotKeys)))
	}
	parts = append(parts, pageBodyStyle.Render(helpStyle.Render(keys.quit.Help().Key+": "+keys.quit.Help().Desc)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
