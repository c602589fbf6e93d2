// Package auth implements credential verification, bearer token issuance
// and validation, session resolution, and role gating. It is read-only
// against the user store and keeps no mutable state of its own.
package auth

import (
	"context"
	"fmt"

	"github.com/mmarinn/dayder/internal/store"
)

// Logger is the logging contract the auth core expects from its host.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// UserLookup is the read contract the auth core needs from the user store.
// Absence is reported as a nil record; an error means the store itself
// failed and is propagated as-is, never retried.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*store.User, error)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
