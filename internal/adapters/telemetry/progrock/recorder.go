// Package progrock provides the Progrock implementation of the tracer port.
package progrock

import (
	"context"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/lode/internal/core/ports"
)

// Recorder implements ports.Tracer on top of a progrock tape. Each span
// becomes a vertex keyed by the digest of its name, so re-resolving the same
// module updates the existing vertex instead of adding a new row.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	tape := progrock.NewTape()
	return NewRecorder(tape)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:   w,
		rec: rec,
	}
}

// Start records a new vertex for the named unit of work.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan records one vertex naming the entry specifiers about to be resolved.
func (r *Recorder) EmitPlan(_ context.Context, specifiers []string) {
	name := "plan: " + strings.Join(specifiers, ", ")
	v := r.rec.Vertex(digest.FromString(name), name)
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
