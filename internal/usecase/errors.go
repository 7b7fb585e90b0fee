package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-roster/internal/domain"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
	"github.com/riskibarqy/team-roster/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

func errRemovalNotConfirmed(name string) error {
	return errors.WithHint(
		errors.Wrapf(domain.ErrInvalidInput, "removal of group %q was not confirmed", name),
		"Confirm that the group should be removed.",
	)
}

// logFailure logs storage and unclassified failures at error level and
// typed failures at warn level. Only the former fail the active span.
func logFailure(ctx context.Context, logger *logging.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if _, typed := domain.UserMessage(err); typed {
		logger.WarnContext(ctx, msg, args...)
		return
	}
	tracing.RecordError(trace.SpanFromContext(ctx), err)
	logger.ErrorContext(ctx, msg, args...)
}
