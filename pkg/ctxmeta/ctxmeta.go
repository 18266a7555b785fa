// Package ctxmeta carries request metadata (request_id, trace ids) through
// context.Context. The HTTP layer and the logger both depend on this small
// package instead of on each other.
package ctxmeta

import "context"

type ctxKey string

const (
	// KeyRequestID uses an unexported key type to avoid collisions with
	// plain string keys.
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID stores request_id in the context; empty id is a no-op.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext extracts the request_id, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
