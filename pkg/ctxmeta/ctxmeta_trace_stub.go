//go:build !otel || gopls

package ctxmeta

import "context"

// Builds without the `otel` tag get no-op trace/span lookups.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
