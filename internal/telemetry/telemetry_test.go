package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/samdwyer/barrenland/internal/config"
)

func TestSetupDisabledInstallsNoopProvider(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx, config.TelemetryConfig{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(ctx))

	_, isNoop := otel.GetTracerProvider().(noop.TracerProvider)
	assert.True(t, isNoop)

	_, span := Tracer("world").Start(ctx, "test")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"", slog.LevelInfo, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		if tt.ok {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown", "cells", 81)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "cells=81")
	assert.Contains(t, out, "service=barrenland")
}

func TestMetricsRegistered(t *testing.T) {
	m := NewMetrics()
	m.Moves.WithLabelValues(OutcomeOK).Inc()
	m.Commands.WithLabelValues(OutcomeUnknown).Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Moves.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands.WithLabelValues(OutcomeUnknown)))

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "barrenland_moves_total")
	assert.Contains(t, names, "barrenland_commands_total")
}
