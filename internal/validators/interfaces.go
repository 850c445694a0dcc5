// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound chat requests before they reach the
// responder. Services receive a Validator so the HTTP layer carries no
// business rules.
package validators

import "context"

// Validator checks obj. When fields are given only those named checks run;
// otherwise every check applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
