//go:build otel && !gopls

package ctxmeta_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/moa_wifi/pkg/ctxmeta"
)

func TestTraceIDFromContext_NoSpan(t *testing.T) {
	if id, ok := ctxmeta.TraceIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("no span: want empty/false, got id=%q ok=%v", id, ok)
	}
}

func TestTraceIDFromContext_WithSpan(t *testing.T) {
	traceID := trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	spanID := trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	gotTrace, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok || gotTrace != traceID.String() {
		t.Fatalf("trace id: got %q ok=%v, want %q", gotTrace, ok, traceID.String())
	}
	gotSpan, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok || gotSpan != spanID.String() {
		t.Fatalf("span id: got %q ok=%v, want %q", gotSpan, ok, spanID.String())
	}
}
