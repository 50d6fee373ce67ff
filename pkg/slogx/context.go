package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or slog.Default() outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// With returns ctx carrying the current logger extended with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithIdentity tags subsequent log lines with the authenticated identity.
func WithIdentity(ctx context.Context, identityID int64, role string) context.Context {
	return With(ctx, "identity_id", identityID, "role", role)
}
