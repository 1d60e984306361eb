// Package logger is a thin wrapper around zerolog.Logger with the
// constructors and context helpers used throughout character-vault.
//
// Logger embeds zerolog.Logger, so the full zerolog API is available on
// *Logger. Handlers obtain request-scoped loggers via FromRequest; anything
// below the HTTP layer receives a *Logger at construction time.
package logger

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout, tagged with the
// given role label (e.g. "character-vault-server") and timestamping every
// entry.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; the child can be enriched without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the logger attached to the request's context by the
// trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx. If none was attached,
// zerolog's global logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
