// Package testutil provides deterministic helpers shared by tests.
package testutil

import (
	"context"
	"sync"

	"github.com/roach88/pavsca/internal/ir"
)

// MemoryRecorder collects rule applications in memory.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type MemoryRecorder struct {
	mu   sync.Mutex
	apps []ir.Application
	err  error
}

// NewMemoryRecorder creates an empty recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// FailWith makes every later RecordApplication return err.
func (r *MemoryRecorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// RecordApplication appends app, or returns the configured failure.
func (r *MemoryRecorder) RecordApplication(_ context.Context, app ir.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.apps = append(r.apps, app)
	return nil
}

// Applications returns a copy of everything recorded so far.
func (r *MemoryRecorder) Applications() []ir.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ir.Application, len(r.apps))
	copy(out, r.apps)
	return out
}
