package game

import (
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Config holds tick loop options.
type Config struct {
	// TickInterval is the pause between iterations.
	TickInterval time.Duration
	// Tracer records one span per tick. Nil means no tracing.
	Tracer trace.Tracer
}

// DefaultConfig returns the standard five second tick without tracing.
func DefaultConfig() Config {
	return Config{TickInterval: 5 * time.Second}
}
