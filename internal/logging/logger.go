// Package logging provides gitlet's structured diagnostic logging, a thin
// wrapper over go.uber.org/zap grounded on
// RobAntunes-TigVCS/internal/logging/logger.go. It is ambient plumbing
// only: nothing in pkg/repo's control flow or in the exact stdout text
// mandated by spec.md §6-7 depends on it.
package logging

import (
	"go.uber.org/zap"
)

// Logger wraps a *zap.Logger so callers can depend on this package's type
// rather than importing zap directly everywhere.
type Logger struct {
	*zap.Logger
}

// New builds a Logger suitable for a short-lived CLI process invocation:
// concise console output, no sampling, warn level and above by default.
func New() *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	l, err := cfg.Build()
	if err != nil {
		return &Logger{zap.NewNop()}
	}
	return &Logger{l}
}

// NewVerbose builds a Logger that also emits debug/info traces, used when
// the CLI runs with the GITLET_VERBOSE environment variable set.
func NewVerbose() *Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return &Logger{zap.NewNop()}
	}
	return &Logger{l}
}

// Noop returns a Logger that discards everything, used as a safe fallback
// when logger construction itself fails.
func Noop() *Logger {
	return &Logger{zap.NewNop()}
}
