package tracing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{}, nil)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, span := StartSpan(context.Background(), "test")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_UnknownExporter(t *testing.T) {
	_, err := Setup(context.Background(), Config{Enabled: true, Exporter: "jaeger"}, nil)
	assert.Error(t, err)
}

func TestSetup_Stdout(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Setup(context.Background(), Config{Enabled: true, Exporter: ExporterStdout}, &buf)
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "tool.read_file")
	span.SetAttributes(StringAttr("tool.name", "read_file"), BoolAttr("tool.error", true))
	RecordError(span, errors.New("boom"))
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "tool.read_file")
	assert.Contains(t, buf.String(), "boom")

	_, err = Setup(context.Background(), Config{}, nil)
	require.NoError(t, err)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Exporter: ExporterNoop}.Validate())
	assert.NoError(t, Config{Exporter: ExporterStdout}.Validate())
	assert.Error(t, Config{Exporter: "zipkin"}.Validate())
}
