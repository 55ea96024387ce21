// Package telemetry holds the step recorders backing ports.Telemetry.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/voltdev/internal/core/ports"
)

var _ ports.Telemetry = Noop{}

// Noop is a ports.Telemetry that records nothing.
type Noop struct{}

// Record returns ctx carrying a vertex that discards its output.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (Noop) Close() error { return nil }

// NoopVertex is a ports.Vertex that discards everything.
type NoopVertex struct{}

// Stdout returns io.Discard.
func (NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoopVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (NoopVertex) Complete(error) {}
