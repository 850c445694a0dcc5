// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the chat client and the demo agent.
// Request-scoped loggers travel in the context and are recovered with
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultClientLogName = "agent-chat.log"

// Logger embeds zerolog.Logger, so Debug, Info, Error and friends are
// available directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role. Entries carry
// a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger for the terminal client, which cannot
// share the screen with log output. Entries are appended to path, or to
// agent-chat.log next to the executable when path is empty. If the file
// cannot be opened, output is discarded.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		path = defaultClientLogPath()
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard, role)
	}
	return newLogger(f, role)
}

func defaultClientLogPath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultClientLogName
	}
	return filepath.Join(filepath.Dir(exe), defaultClientLogName)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zl := zerolog.New(out).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
	return &Logger{Logger: zl}
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger copies l; fields added to the copy stay out of l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// context logger when there is none.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
