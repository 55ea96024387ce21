package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex is one recorded pipeline step, such as configure, build, compile,
// or the formatting of a single file.
type Vertex struct {
	rec *progrock.VertexRecorder
}

// Stdout returns the writer collecting the step's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.rec.Stdout()
}

// Stderr returns the writer collecting the step's diagnostics.
func (v *Vertex) Stderr() io.Writer {
	return v.rec.Stderr()
}

// Complete closes the step. A non-nil err marks it failed in the progress tape.
func (v *Vertex) Complete(err error) {
	v.rec.Done(err)
}
