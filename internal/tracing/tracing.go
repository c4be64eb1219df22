// Package tracing configures OpenTelemetry for fsbox and provides span
// helpers for tool calls.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/deepnoodle-ai/fsbox"

// Exporter names accepted by Setup.
const (
	ExporterNoop   = "noop"
	ExporterStdout = "stdout"
)

// Config selects the span exporter.
type Config struct {
	Enabled  bool   `yaml:"enabled" split_words:"true"`
	Exporter string `yaml:"exporter" split_words:"true"`
}

// Validate reports an unknown exporter name.
func (c Config) Validate() error {
	switch c.Exporter {
	case "", ExporterNoop, ExporterStdout:
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter %q", c.Exporter)
	}
}

// Setup installs the global tracer provider and returns its shutdown
// function. When tracing is disabled a noop provider is installed. The
// stdout exporter writes to w, or to stderr when w is nil, because stdout
// may carry the MCP stream.
func Setup(ctx context.Context, cfg Config, w io.Writer) (func(context.Context) error, error) {
	noopShutdown := func(context.Context) error { return nil }

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled || cfg.Exporter == "" || cfg.Exporter == ExporterNoop {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return noopShutdown, nil
	}

	if w == nil {
		w = os.Stderr
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// StartSpan starts a span with the fsbox tracer.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, opts...)
}

// RecordError records err on the span and marks it failed.
func RecordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetOK marks the span successful.
func SetOK(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// StringAttr is a convenience for attribute.String.
func StringAttr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// BoolAttr is a convenience for attribute.Bool.
func BoolAttr(key string, value bool) attribute.KeyValue {
	return attribute.Bool(key, value)
}
