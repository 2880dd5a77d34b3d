package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
)

// Init* tests install global providers and so run sequentially.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp url", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp host port", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(context.Background(), "projectboard-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			// No collector runs in tests, so an OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
			assert.NotEmpty(t, otel.GetTextMapPropagator().Fields())
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := telemetry.InitMeter(context.Background(), "projectboard-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
		})
	}
}

func TestNewMetrics_RegistersEveryInstrument(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp, "projectboard-test")
	require.NoError(t, err)

	ctx := t.Context()
	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.02)
	m.ClientRequestTotal.Add(ctx, 1)
	m.ProjectsCreated.Add(ctx, 1)
	m.StatusTransitions.Add(ctx, 1)
	m.ListRenders.Add(ctx, 1)
	m.ListWatchers.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var names []string
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			names = append(names, metric.Name)
		}
	}
	assert.ElementsMatch(t, []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"board.projects.created",
		"board.status.transitions",
		"board.list.renders",
		"board.list.watchers",
	}, names)
}

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(t.Context(), config.TelemetryConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, p.Metrics())
	assert.NoError(t, p.Shutdown(t.Context()))
}

func TestSetup_Stdout(t *testing.T) {
	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "projectboard-test",
	})
	require.NoError(t, err)
	assert.NotNil(t, p.Metrics())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_InvalidExporter(t *testing.T) {
	_, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
		Enabled:     true,
		Exporter:    "zipkin",
		ServiceName: "projectboard-test",
	})
	require.ErrorContains(t, err, "init tracer")
}
