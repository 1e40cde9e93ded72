package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"raceboard/internal/domain"
	"raceboard/internal/infrastructure/metrics"
)

// telemetry carries the logger and tracer every service shares.
type telemetry struct {
	log    *zap.SugaredLogger
	tracer trace.Tracer
}

func newTelemetry(log *zap.SugaredLogger, tracer trace.Tracer) telemetry {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("raceboard")
	}
	return telemetry{log: log, tracer: tracer}
}

// withTelemetry wraps a read operation with a span, metrics, logging and
// panic recovery. An op error wrapping domain.ErrNotFound is expected
// absence: the zero value is returned with a nil error.
func withTelemetry[T any](
	t telemetry,
	ctx context.Context,
	operation string,
	identifier string,
	op func(ctx context.Context) (T, error),
) (T, error) {
	return observe(t, ctx, operation, identifier, true, op)
}

// withWriteTelemetry is withTelemetry for writes. A write that hits a
// missing row has failed, so domain.ErrNotFound is returned wrapped like
// any other error.
func withWriteTelemetry[T any](
	t telemetry,
	ctx context.Context,
	operation string,
	identifier string,
	op func(ctx context.Context) (T, error),
) (T, error) {
	return observe(t, ctx, operation, identifier, false, op)
}

func observe[T any](
	t telemetry,
	ctx context.Context,
	operation string,
	identifier string,
	absentIsNil bool,
	op func(ctx context.Context) (T, error),
) (result T, err error) {
	ctx, span := t.tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("identifier", identifier),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operation, r)
			t.log.Errorw("panic recovered", "operation", operation, "identifier", identifier, "err", err)
			metrics.OperationsTotal.WithLabelValues(operation, metrics.OutcomeError).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			var zero T
			result = zero
		}
	}()

	t.log.Debugw("operation started", "operation", operation, "identifier", identifier)

	result, err = op(ctx)
	switch {
	case err == nil:
		metrics.OperationsTotal.WithLabelValues(operation, metrics.OutcomeOK).Inc()
		return result, nil

	case absentIsNil && errors.Is(err, domain.ErrNotFound):
		t.log.Debugw("operation found nothing", "operation", operation, "identifier", identifier, "reason", err.Error())
		metrics.OperationsTotal.WithLabelValues(operation, metrics.OutcomeNotFound).Inc()
		span.SetAttributes(attribute.Bool("found", false))
		var zero T
		return zero, nil

	default:
		wrapped := fmt.Errorf("%s: %w", operation, err)
		t.log.Errorw("operation failed",
			"operation", operation,
			"identifier", identifier,
			"code", domain.Code(err),
			"err", wrapped,
		)
		metrics.OperationsTotal.WithLabelValues(operation, metrics.OutcomeError).Inc()
		span.RecordError(wrapped)
		span.SetStatus(codes.Error, wrapped.Error())
		var zero T
		return zero, wrapped
	}
}
