package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}

	return ""
}

// ValidateAndExtractRequestID returns the incoming request id when it is a
// valid UUID, or a fresh one otherwise. Callers never see an empty id.
func ValidateAndExtractRequestID(incoming string) string {
	if incoming != "" {
		if _, err := uuid.Parse(incoming); err == nil {
			return incoming
		}
	}

	return uuid.NewString()
}
