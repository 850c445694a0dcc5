// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/agent-chat/internal/adapter"
	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/internal/utils"
	"github.com/MKhiriev/agent-chat/models"
)

// WelcomeText seeds every new transcript.
const WelcomeText = "👋 Welcome! I can analyze README files from the compose-for-agents repository " +
	"and upload the analysis to Box. Press F1 (🔍 Analyze READMEs) to get started!"

// IDGenerator produces message identifiers.
type IDGenerator interface {
	Generate() string
}

// Exchange is an accepted submission waiting for the agent.
type Exchange struct {
	// ID is the identifier of the USER message that opened the exchange.
	ID string
	// Text is the submitted text, verbatim.
	Text string
}

// Result is the outcome of one agent request.
type Result struct {
	Exchange Exchange
	Reply    string
	Err      error
}

// Session is the conversation state machine. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	transcript []models.Message
	draft      string
	status     Status
	inflight   string

	agent  adapter.AgentAdapter
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// Option customises a Session.
type Option func(*Session)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIDGenerator replaces the message identifier source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Session) {
		s.ids = ids
	}
}

// New returns an idle session whose transcript holds the welcome notice.
func New(agent adapter.AgentAdapter, logger *logger.Logger, opts ...Option) *Session {
	s := &Session{
		agent:  agent,
		ids:    utils.TimeOrderedIDs,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.transcript = []models.Message{s.newMessage(WelcomeText, models.OriginAgent)}
	return s
}

// Submit runs a full exchange synchronously: it accepts candidate, calls the
// agent once and records the reply or a diagnostic. ok is false when the
// candidate was rejected; nothing changes in that case.
func (s *Session) Submit(ctx context.Context, candidate string) (reply models.Message, ok bool) {
	exchange, ok := s.Begin(candidate)
	if !ok {
		return models.Message{}, false
	}

	return s.Resolve(s.Request(ctx, exchange)), true
}

// Begin accepts candidate: it appends the USER message, clears the draft and
// marks the session busy. It returns false without side effects when
// candidate is blank or a request is already outstanding.
func (s *Session) Begin(candidate string) (Exchange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(candidate) == "" {
		return Exchange{}, false
	}
	if s.status == StatusBusy {
		s.logger.Debug().Msg("submission ignored: request in flight")
		return Exchange{}, false
	}

	msg := s.newMessage(candidate, models.OriginUser)
	s.transcript = append(s.transcript, msg)
	s.draft = ""
	s.status = StatusBusy
	s.inflight = msg.ID

	s.logger.Debug().Str("message_id", msg.ID).Msg("submission accepted")
	return Exchange{ID: msg.ID, Text: candidate}, true
}

// Request performs the single agent call of an exchange. It does not touch
// session state and may run on any goroutine.
func (s *Session) Request(ctx context.Context, exchange Exchange) Result {
	reply, err := s.agent.Chat(ctx, exchange.Text)
	return Result{Exchange: exchange, Reply: reply, Err: err}
}

// Resolve records the outcome of the outstanding exchange and returns the
// AGENT message appended for it. The session is idle afterwards. A result
// for an exchange that is not outstanding is dropped and the zero Message is
// returned.
func (s *Session) Resolve(result Result) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusBusy || result.Exchange.ID != s.inflight {
		s.logger.Warn().Str("message_id", result.Exchange.ID).Msg("stale agent result dropped")
		return models.Message{}
	}
	defer func() {
		s.status = StatusIdle
		s.inflight = ""
	}()

	text := result.Reply
	if result.Err != nil {
		s.logger.Err(result.Err).Str("message_id", result.Exchange.ID).Msg("agent request failed")
		text = diagnostic(result.Err)
	}

	msg := s.newMessage(text, models.OriginAgent)
	s.transcript = append(s.transcript, msg)
	return msg
}

// UpdateDraft replaces the draft input.
func (s *Session) UpdateDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = text
}

// Draft returns the current draft input.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft
}

// Status returns the current status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Busy reports whether a request is outstanding.
func (s *Session) Busy() bool {
	return s.Status() == StatusBusy
}

// Transcript returns a copy of the transcript in insertion order.
func (s *Session) Transcript() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]models.Message, len(s.transcript))
	copy(transcript, s.transcript)
	return transcript
}

// LastReply returns the most recent AGENT message, if any.
func (s *Session) LastReply() (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.transcript) - 1; i >= 0; i-- {
		if !s.transcript[i].IsUser() {
			return s.transcript[i], true
		}
	}
	return models.Message{}, false
}

func (s *Session) newMessage(text string, origin models.Origin) models.Message {
	return models.Message{
		ID:        s.ids.Generate(),
		Text:      text,
		Origin:    origin,
		Timestamp: s.now(),
	}
}
