// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It ties the terminal UI to the process lifecycle: termination signals,
// start and exit logging.
package client
