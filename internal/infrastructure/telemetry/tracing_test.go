package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)

	ctx, span := StartServiceSpan(context.Background(), "report", "summary", attribute.String("range", "today"))
	assert.NotEmpty(t, GetTraceID(ctx))
	EndSpan(span, nil)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "report.summary", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
}

func TestEndSpan_Errors(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := StartServiceSpan(context.Background(), "report", "archive")
	EndSpan(span, shared.Validation("bad range"))
	_, span = StartServiceSpan(context.Background(), "report", "archive")
	EndSpan(span, errors.New("s3 down"))

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("error.code", "VALIDATION_ERROR"))
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}
