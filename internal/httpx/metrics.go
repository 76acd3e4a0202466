// Package httpx carries the HTTP middleware stack: telemetry, request
// logging, panic recovery, and the Prometheus metrics exporter.
package httpx

import (
	"context"

	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// SetupPrometheusExporter wires a Prometheus exporter into a meter
// provider. Scraping happens through the standard promhttp handler.
func SetupPrometheusExporter() (*metric.MeterProvider, *prometheus.Exporter, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, nil, err
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))

	return provider, exporter, nil
}

// Shutdown gracefully shuts down the meter provider.
func Shutdown(ctx context.Context, provider *metric.MeterProvider) error {
	if provider == nil {
		return nil
	}
	return provider.Shutdown(ctx)
}
