package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"vantage/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// jobInserter is an insert-only River client shared by every PgSQL handle. It
// never works jobs, so it is not bound to a database and inserts through the
// transaction it is given.
var jobInserter = sync.OnceValues(func() (*river.Client[*sql.Tx], error) { //nolint: gochecknoglobals
	return river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
})

// AddJob enqueues a new River job.
//
// Inside a transaction the job is inserted with InsertTx, so it only becomes
// visible once the surrounding transaction commits. This is what keeps a
// workflow transition and its notification jobs consistent. Outside a
// transaction a short one is opened for the insert.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var added bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			added, err = s.AddJob(ctx, args, opts)

			return err
		})

		return added, err
	}

	client, err := jobInserter()
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	job, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !job.UniqueSkippedAsDuplicate, nil
}
