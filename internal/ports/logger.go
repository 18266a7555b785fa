package ports

import "context"

// Logger is the minimal logging contract used by every layer. The context
// carries request metadata (request_id, trace ids) for implementations that
// care about it.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
