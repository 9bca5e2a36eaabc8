package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func TestStartSpanRecordsAttributesAndEvents(t *testing.T) {
	recorder := newSpanRecorder(t)

	ctx, span := StartSpan(context.Background(), "trader-api", "AssistantHandler.Chat")
	AddSpanAttributes(ctx, attribute.String("user.id", "user_1"))
	AddSpanEvent(ctx, "model_call")

	if GetTraceID(ctx) == "" {
		t.Error("trace id missing inside active span")
	}
	if GetSpanID(ctx) == "" {
		t.Error("span id missing inside active span")
	}
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended span count = %d", len(ended))
	}
	got := ended[0]
	if got.Name() != "AssistantHandler.Chat" {
		t.Errorf("span name = %q", got.Name())
	}

	var found bool
	for _, attr := range got.Attributes() {
		if attr.Key == "user.id" && attr.Value.AsString() == "user_1" {
			found = true
		}
	}
	if !found {
		t.Error("user.id attribute not recorded")
	}
	if len(got.Events()) != 1 || got.Events()[0].Name != "model_call" {
		t.Errorf("events = %+v", got.Events())
	}
}

func TestRecordErrorMarksSpan(t *testing.T) {
	recorder := newSpanRecorder(t)

	ctx, span := StartSpan(context.Background(), "trader-api", "ModelClient.CreateChatCompletion")
	RecordError(ctx, errors.New("upstream 502"))
	span.End()

	got := recorder.Ended()[0]
	if got.Status().Code != codes.Error {
		t.Errorf("status = %v, want error", got.Status().Code)
	}
	if len(got.Events()) == 0 {
		t.Error("exception event not recorded")
	}
}

func TestGetTraceIDWithoutSpan(t *testing.T) {
	if got := GetTraceID(context.Background()); got != "" {
		t.Errorf("trace id outside a span = %q, want empty", got)
	}
}
