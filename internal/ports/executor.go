package ports

import (
	"context"

	"artificer/internal/types"
)

// ExecutorPort is the boundary with the external build executor. Submit
// queues one assembled build and returns its artifact ref; Run is the
// terminal submit-and-run call issued once the composer has queued every
// requested artifact. The executor owns caching, sandboxing, fetching,
// and any parallel materialization of the queued entries.
type ExecutorPort interface {
	Submit(ctx context.Context, sub types.Submission) (types.ArtifactRef, error)
	Run(ctx context.Context) error
}

// PlanReaderPort loads a previously written build plan for inspection.
type PlanReaderPort interface {
	ReadPlan() (types.BuildPlan, error)
}
