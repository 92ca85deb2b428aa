// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/changed/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder over an in-memory tape that reports finished vertices to log.
func New(log ports.Logger) *Recorder {
	return NewRecorder(newLoggingWriter(progrock.NewTape(), log))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex named after the unit of work.
// The digest is derived from the name, so a name identifies one vertex per session.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// loggingWriter forwards status updates to the wrapped writer and logs each
// vertex once, when it first arrives completed.
type loggingWriter struct {
	progrock.Writer

	logger ports.Logger
	mu     sync.Mutex
	done   map[string]struct{}
}

func newLoggingWriter(w progrock.Writer, log ports.Logger) *loggingWriter {
	return &loggingWriter{Writer: w, logger: log, done: map[string]struct{}{}}
}

func (w *loggingWriter) WriteStatus(u *progrock.StatusUpdate) error {
	w.mu.Lock()
	for _, v := range u.Vertexes {
		if v.GetCompleted() == nil {
			continue
		}
		if _, seen := w.done[v.GetId()]; seen {
			continue
		}
		w.done[v.GetId()] = struct{}{}

		took := v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime()).Round(time.Millisecond)
		if msg := v.GetError(); msg != "" {
			w.logger.Debug(fmt.Sprintf("%s failed after %s: %s", v.GetName(), took, msg))
		} else {
			w.logger.Debug(fmt.Sprintf("%s finished in %s", v.GetName(), took))
		}
	}
	w.mu.Unlock()

	return w.Writer.WriteStatus(u)
}
