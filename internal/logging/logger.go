// Package logging is the structured logger shared by the storefront server
// transports and services, backed by log/slog.
package logging

import "context"

// Logger writes leveled records with alternating key/value attributes:
//
//	log.Info(ctx, "Product added", "id", p.ID, "name", p.Name)
//
// Shopper emails and passwords are never logged; records carry user ids.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	// Error is used for infrastructure failures only. Rejected input and
	// auth failures go back to the caller unlogged.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger; transports use it to tag records with
	// their module name.
	With(args ...any) Logger
}
