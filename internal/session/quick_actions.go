package session

// QuickAction is a pre-filled input offered as a one-key shortcut.
type QuickAction struct {
	// Label is shown to the user.
	Label string
	// Text is submitted exactly like typed input.
	Text string
}

var quickActions = [...]QuickAction{
	{Label: "🔍 Analyze READMEs", Text: "analyze readme"},
	{Label: "📋 Status", Text: "status"},
	{Label: "❓ Help", Text: "help"},
}

// QuickActions returns the available shortcuts in display order.
func QuickActions() []QuickAction {
	actions := make([]QuickAction, len(quickActions))
	copy(actions, quickActions[:])
	return actions
}

// QuickActionText returns the text of the i-th shortcut. ok is false when i
// is out of range.
func QuickActionText(i int) (text string, ok bool) {
	if i < 0 || i >= len(quickActions) {
		return "", false
	}
	return quickActions[i].Text, true
}
