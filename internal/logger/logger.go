// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and context-aware helpers used throughout the
// comment board application.
//
// The Logger type embeds zerolog.Logger so the full zerolog API is available
// directly on *Logger. Application code passes *Logger by pointer and obtains
// request-scoped loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// upstream API while leaving room for application-specific helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "board-server", "board-client").
//
// Every entry carries:
//   - a "role" field for filtering logs of different processes;
//   - a timestamp;
//   - a "func" caller field holding the fully-qualified function name.
//
// Output is JSON on os.Stdout with the global level set to Debug.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests and
// other contexts where log noise is undesirable.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the receiver.
// The child can be enriched with extra context fields without affecting the
// parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped zerolog.Logger previously attached
// to the request context by middleware and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. When no logger has been attached, zerolog falls back to its global
// logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
