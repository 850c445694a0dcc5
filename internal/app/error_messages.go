// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message strings used by the demo agent's
// handlers and middleware.
//
// The Msg* constants end up in the `detail` field of error bodies, so
// clients see the same wording for the same failure.
package app

const (
	// MsgErrorProcessingRequest prefixes the detail of any failure raised
	// while the agent produced a reply.
	MsgErrorProcessingRequest = "Error processing request"

	// MsgNotFound is returned for unknown routes and unrouted methods.
	MsgNotFound = "Not Found"

	// MsgInvalidGzipData is returned when a request claims gzip encoding but
	// its body cannot be inflated.
	MsgInvalidGzipData = "invalid gzip data"
)
