package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"vantage/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type assessmentEventArgs struct {
	AssessmentID int64 `json:"assessment_id" river:"unique"`
}

func (assessmentEventArgs) Kind() string { return "test_assessment_event" }

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	added, err := txStorage.AddJob(ctx, assessmentEventArgs{AssessmentID: 1}, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, added)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&assessmentEventArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction_UsesDBPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	added, err := pg.AddJob(ctx, assessmentEventArgs{AssessmentID: 2}, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, added)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&assessmentEventArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_UniqueDuplicateSkipped(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

	added, err := pg.AddJob(ctx, assessmentEventArgs{AssessmentID: 3}, opts)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, assessmentEventArgs{AssessmentID: 3}, opts)
	require.NoError(t, err)
	require.False(t, added)
}
