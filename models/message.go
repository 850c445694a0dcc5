// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Origin tells who produced a transcript entry. It drives placement and
// styling of the entry in the UI.
type Origin int

const (
	// OriginUser marks text typed or chosen by the user.
	OriginUser Origin = iota
	// OriginAgent marks replies, diagnostics and the welcome notice.
	OriginAgent
)

// String returns a short lowercase label for the origin.
func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginAgent:
		return "agent"
	default:
		return "unknown"
	}
}

// Message is a single transcript entry.
//
// Text may contain embedded line breaks; each line is rendered as its own
// display block. Timestamp is set once when the entry is created and is only
// used for display.
type Message struct {
	// ID is a client-side identifier, useful for logs and debugging.
	ID string

	// Text is the displayable content.
	Text string

	// Origin tells whether the user or the agent produced the entry.
	Origin Origin

	// Timestamp is the creation time of the entry.
	Timestamp time.Time
}

// IsUser reports whether the message was produced by the user.
func (m Message) IsUser() bool {
	return m.Origin == OriginUser
}
