package main

import (
	"context"
	"database/sql"
	"fmt"

	root "vantage"
	"vantage/internal/config"
	"vantage/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}

	return nil
}

// migrateRiver brings the river queue tables to the latest version.
func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}

	logger.Info(ctx, "river queue migrations", zap.Int("current", currentVersion), zap.Int("latest", latestVersion))
	if latestVersion <= currentVersion {
		return nil
	}

	if _, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	}); err != nil {
		return fmt.Errorf("could not migrate river queue database: %w", err)
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the schema
// and river queue migrations, and optionally seeds the reference data.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			withSeed, _ := cmd.Flags().GetBool("seed")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate schema", zap.Error(err))
			}
			if err := migrateRiver(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}

			if withSeed {
				runSeed(ctx, cfg, strg, "")
			}
		},
	}

	cmd.Flags().Bool("seed", false, "Seed the bundled reference data after migrating")

	return cmd
}
