// Package telemetry provides optional OpenTelemetry tracing over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerPrefix = "tamagotchi/"

// Options selects whether spans are exported and how the process identifies itself.
type Options struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
}

// Provider hands out tracers. A nil or disabled Provider hands out no-op tracers.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup builds a Provider. When opts.Enabled is false nothing is exported and no
// network connection is made. Otherwise spans go to the endpoint named by the
// standard OTEL_EXPORTER_OTLP_* environment variables.
func Setup(ctx context.Context, opts Options) (*Provider, error) {
	if !opts.Enabled {
		return &Provider{}, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(processAttributes(opts)...))
	if err != nil {
		return nil, fmt.Errorf("trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &Provider{tp: tp}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.tp != nil
}

// Tracer returns a tracer for the named component.
func (p *Provider) Tracer(component string) trace.Tracer {
	if !p.Enabled() {
		return NoopTracer()
	}
	return p.tp.Tracer(tracerPrefix + component)
}

// Shutdown flushes pending spans. It is a no-op when tracing is disabled.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.tp.Shutdown(ctx)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerPrefix + "noop")
}

func processAttributes(opts Options) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", opts.ServiceName),
		attribute.String("service.version", opts.ServiceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
