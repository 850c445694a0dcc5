// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the state of one conversation with the agent.
//
// A [Session] owns three things: the append-only transcript, the draft the
// user is typing, and the busy/idle status. All mutation goes through
// [Session.Submit] (or its asynchronous halves [Session.Begin],
// [Session.Request] and [Session.Resolve]) and [Session.UpdateDraft].
//
// At most one request to the agent is outstanding at any time. Submitting
// empty or whitespace-only text, or submitting while busy, is a silent no-op.
// Agent failures never escape the session: they become diagnostic entries in
// the transcript prefixed with [ErrorMarker].
package session
