// Package progrock records pipeline steps on a progrock tape.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/voltdev/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock.Recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named name. Repeated names get distinct digests.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := VertexDigest(r.seq.Add(1), name)
	vertex := &Vertex{rec: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// VertexDigest derives the vertex digest from its position in the run and its name.
func VertexDigest(seq uint64, name string) digest.Digest {
	return digest.FromString(strconv.FormatUint(seq, 10) + "/" + name)
}
