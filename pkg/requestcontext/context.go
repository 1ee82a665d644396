// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them, services read them, and tests
// inject them without running the HTTP stack.
//
// The acting staff identity is deliberately NOT read from here by the
// admission service: operations take the actor as an explicit parameter.
// These accessors exist for the transport layer to extract the actor once and
// for log correlation (request ID, request time).
package requestcontext

import (
	"context"
	"time"

	id "touchline/pkg/domain"
)

type (
	staffIDKey     struct{}
	staffRoleKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// StaffID retrieves the authenticated staff ID from the context.
// Returns the zero value if not set.
func StaffID(ctx context.Context) id.StaffID {
	if v, ok := ctx.Value(staffIDKey{}).(id.StaffID); ok {
		return v
	}
	return id.StaffID{}
}

// WithStaffID injects a staff ID into the context.
func WithStaffID(ctx context.Context, staffID id.StaffID) context.Context {
	return context.WithValue(ctx, staffIDKey{}, staffID)
}

// StaffRole retrieves the acting staff role from the context.
func StaffRole(ctx context.Context) string {
	if v, ok := ctx.Value(staffRoleKey{}).(string); ok {
		return v
	}
	return ""
}

// WithStaffRole injects a staff role into the context.
func WithStaffRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, staffRoleKey{}, role)
}

// RequestID retrieves the request correlation ID from the context.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithRequestID injects a request correlation ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() for non-HTTP contexts (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests and for batch work that needs one consistent timestamp.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
