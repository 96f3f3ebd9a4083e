package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private type so context values cannot collide with
// other packages.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
)

// Session is the authenticated user as carried in the request context.
// The core only ever reads it for display; authorization happened at
// token issuance.
type Session struct {
	Email string
	Name  string
	Image string
}

// GetLoggerFromCtx retrieves the request-scoped logger, falling back to
// the default logger when none was injected.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ContextWithLogger returns a child context carrying logger.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetSessionFromCtx retrieves the authenticated session, if any.
func GetSessionFromCtx(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(Session)
	return s, ok
}

// ContextWithSession returns a child context carrying the session.
func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}
