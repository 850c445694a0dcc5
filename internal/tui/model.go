// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/agent-chat/internal/adapter"
	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/internal/render"
	"github.com/MKhiriev/agent-chat/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 2
	// quick action bar with borders, input box with borders, help line
	footerHeight = 3 + 3 + 1
	minViewport  = 3

	inputCharLimit = 4000
)

type agentState int

const (
	agentChecking agentState = iota
	agentOnline
	agentOffline
)

type chatModel struct {
	ctx     context.Context
	session *session.Session
	agent   adapter.AgentAdapter
	logger  *logger.Logger
	opts    Options

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	ready  bool
	width  int
	height int

	agentState  agentState
	agentDetail string

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newChatModel(ctx context.Context, sess *session.Session, agent adapter.AgentAdapter, opts Options, logger *logger.Logger) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = "> "
	ti.CharLimit = inputCharLimit
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return chatModel{
		ctx:      ctx,
		session:  sess,
		agent:    agent,
		logger:   logger,
		opts:     opts,
		input:    ti,
		viewport: viewport.New(0, 0),
		spinner:  s,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdHealth(m.ctx, m.agent))
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case replyMsg:
		m.session.Resolve(msg.result)
		m.refresh()
		return m, nil

	case healthMsg:
		if msg.err != nil || !msg.health.Healthy() {
			m.agentState = agentOffline
			m.agentDetail = humanizeAgentUnavailableError(msg.err)
			if msg.err == nil {
				m.agentDetail = "status: " + msg.health.Status
			}
			m.logger.Warn().Err(msg.err).Str("status", msg.health.Status).Msg("agent health check failed")
			return m, nil
		}
		m.agentState = agentOnline
		m.agentDetail = msg.health.Service
		return m, nil

	case spinner.TickMsg:
		if !m.session.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.send) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.send):
		return m.submit(m.input.Value())
	case key.Matches(msg, keys.copy):
		reply, ok := m.session.LastReply()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(reply.Text)
	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	for i, quick := range quickKeys {
		if key.Matches(msg, quick) {
			text, _ := session.QuickActionText(i)
			return m.submit(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.UpdateDraft(m.input.Value())
	return m, cmd
}

// submit hands candidate to the session. Rejected candidates leave the model
// untouched.
func (m chatModel) submit(candidate string) (tea.Model, tea.Cmd) {
	exchange, ok := m.session.Begin(candidate)
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.refresh()
	return m, tea.Batch(m.spinner.Tick, cmdRequest(m.ctx, m.session, exchange))
}

func (m *chatModel) resize(width, height int) {
	m.width = width
	m.height = height

	frameW, frameH := appStyle.GetFrameSize()
	contentWidth := width - frameW
	vpHeight := height - frameH - headerHeight - footerHeight
	if vpHeight < minViewport {
		vpHeight = minViewport
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = vpHeight
	m.input.Width = contentWidth - inputBoxStyle.GetHorizontalFrameSize() - len(m.input.Prompt)
	m.ready = true
	m.refresh()
}

// refresh re-lays out the transcript and keeps the newest entry visible.
func (m *chatModel) refresh() {
	transcript := m.session.Transcript()
	busy := m.session.Busy()

	var blocks []render.Block
	if m.opts.RenderMarkdown {
		blocks = render.MarkdownBlocks(transcript, busy, m.markdownOptions())
	} else {
		blocks = render.Blocks(transcript, busy)
	}

	m.viewport.SetContent(renderTranscript(blocks, m.spinner.View()))
	m.viewport.GotoBottom()
}

func (m chatModel) markdownOptions() render.Options {
	opts := render.DefaultOptions().WithStyle(m.opts.MarkdownStyle)
	if m.viewport.Width > 4 {
		opts = opts.WithWidth(m.viewport.Width - 4)
	}
	return opts
}

func (m *chatModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m chatModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.opts.BuildInfo, m.opts.AgentAddress, m.width))
	}
	if !m.ready {
		return appStyle.Render("Initializing...")
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.quickActionsView())
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Width(m.viewport.Width - inputBoxStyle.GetHorizontalBorderSize()).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.helpView())

	body := b.String()
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.viewport.Width)
	}

	return appStyle.Render(body)
}

func (m chatModel) headerView() string {
	var state string
	switch m.agentState {
	case agentOnline:
		state = onlineStyle.Render("● online")
	case agentOffline:
		state = offlineStyle.Render("● offline")
	default:
		state = helpStyle.Render("● checking")
	}
	if m.agentDetail != "" {
		state += helpStyle.Render(" " + fitText(m.agentDetail, 40))
	}

	title := titleStyle.Render("🤖 README Analyzer Chat")
	if m.session.Busy() {
		title += " " + m.spinner.View()
	}
	return title + "  " + state
}

func (m chatModel) quickActionsView() string {
	style := quickActionStyle
	if m.session.Busy() {
		style = disabledQuickActionStyle
	}

	actions := session.QuickActions()
	views := make([]string, 0, len(actions))
	for i, action := range actions {
		views = append(views, style.Render(quickKeys[i].Help().Key+" "+action.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m chatModel) helpView() string {
	if m.status != "" {
		return onlineStyle.Render(m.status)
	}

	bindings := []key.Binding{keys.send, keys.copy, keys.buildInfo, keys.pageUp, keys.quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+": "+b.Help().Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
