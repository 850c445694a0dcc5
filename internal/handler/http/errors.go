// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while decoding a chat request body. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyRequestBody is returned when POST /chat arrives without a body.
	ErrEmptyRequestBody = errors.New("request body is empty")

	// ErrMalformedRequest is returned when the body is not a JSON object
	// matching the chat request shape.
	ErrMalformedRequest = errors.New("malformed request body")

	// ErrMissingMessage is returned when the JSON body has no `message` field.
	ErrMissingMessage = errors.New("field `message` is required")
)
