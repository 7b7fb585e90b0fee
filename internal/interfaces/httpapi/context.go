package httpapi

import (
	"context"

	"github.com/riskibarqy/team-roster/internal/platform/logging"
)

const requestIDHeader = "X-Request-Id"

func withRequestID(ctx context.Context, requestID string) context.Context {
	return logging.ContextWithRequestID(ctx, requestID)
}
