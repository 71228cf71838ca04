package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write streams output onto the vertex.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError stores the error; the vertex is marked failed when End runs.
func (s *Span) RecordError(err error) {
	s.err = err
}

// Cached marks the vertex as a cache hit.
func (s *Span) Cached() {
	s.vertex.Cached()
}

// SetAttribute logs the key-value pair onto the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End marks the vertex as finished, failed if an error was recorded.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
