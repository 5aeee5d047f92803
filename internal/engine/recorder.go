package engine

import (
	"context"

	"github.com/roach88/pavsca/internal/ir"
)

// Recorder receives every successful rule application.
// Implemented by store.Store and testutil.MemoryRecorder.
type Recorder interface {
	RecordApplication(ctx context.Context, app ir.Application) error
}
