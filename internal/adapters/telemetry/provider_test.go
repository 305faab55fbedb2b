package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/relay/internal/adapters/logger"
	"go.trai.ch/relay/internal/adapters/telemetry"
	"go.trai.ch/relay/internal/core/ports"
)

func newRecordedTracer() (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return telemetry.NewOTelTracerWithProvider(provider, "test"), recorder
}

func TestOTelTracer_StartAppliesAttributes(t *testing.T) {
	tracer, recorder := newRecordedTracer()

	_, span := tracer.Start(context.Background(), "dispatch", ports.WithAttribute("activity", "setPolicy"))
	span.SetAttribute("cached", true)
	span.SetAttribute("workers", 4)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "dispatch", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("activity", "setPolicy"))
	assert.Contains(t, ended[0].Attributes(), attribute.Bool("cached", true))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("workers", 4))
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordedTracer()

	_, span := tracer.Start(context.Background(), "dispatch")
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
}

func TestOTelSpan_UnknownAttributeType(t *testing.T) {
	tracer, recorder := newRecordedTracer()

	_, span := tracer.Start(context.Background(), "dispatch")
	span.SetAttribute("value", struct{ A int }{A: 1})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Contains(t, ended[0].Attributes(), attribute.String("value", "{1}"))
}

func TestLogBridge_LogsFinishedSpans(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf)
	require.NoError(t, log.SetFormat("text"))
	require.NoError(t, log.SetLevel("debug"))

	provider := telemetry.NewProvider(log)
	tracer := telemetry.NewOTelTracerWithProvider(provider, "test")

	_, span := tracer.Start(context.Background(), "dispatch", ports.WithAttribute("activity", "setPolicy"))
	span.RecordError(errors.New("boom"))
	span.End()
	require.NoError(t, provider.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "span finished")
	assert.Contains(t, out, "span=dispatch")
	assert.Contains(t, out, "activity=setPolicy")
	assert.Contains(t, out, "status=boom")
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
