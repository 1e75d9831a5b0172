package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the job into the underlying
// queue backend. The args parameter contains the job payload and opts can be
// used to customize insertion behavior (e.g., queue name, delay, priority).
//
// When called on a TxStorage the job only becomes visible once the
// surrounding transaction commits, which is how workflow transitions and their
// notifications stay consistent.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the job was skipped as a unique duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
