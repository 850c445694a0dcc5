package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send         key.Binding
	quickAnalyze key.Binding
	quickStatus  key.Binding
	quickHelp    key.Binding
	copy         key.Binding
	buildInfo    key.Binding
	pageUp       key.Binding
	pageDown     key.Binding
	esc          key.Binding
	quit         key.Binding
}

var keys = keyMap{
	send:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	quickAnalyze: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "analyze")),
	quickStatus:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "status")),
	quickHelp:    key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "help")),
	copy:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy reply")),
	buildInfo:    key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "about")),
	pageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	pageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "scroll down")),
	esc:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// quickKeys lists the quick action shortcuts in quick action order.
var quickKeys = []key.Binding{keys.quickAnalyze, keys.quickStatus, keys.quickHelp}
