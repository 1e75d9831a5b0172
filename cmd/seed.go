package main

import (
	"context"
	"os"

	"vantage/internal/config"
	"vantage/internal/lookups"
	"vantage/internal/seed"
	"vantage/pkg/logger"
	"vantage/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runSeed loads the seed file (or the bundled data when file is empty) and
// writes it. Cached lookups are dropped afterwards.
func runSeed(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, file string) {
	var (
		data *seed.Data
		err  error
	)
	if file == "" {
		data, err = seed.Default()
	} else {
		var b []byte
		b, err = os.ReadFile(file)
		if err == nil {
			data, err = seed.Parse(b)
		}
	}
	if err != nil {
		logger.Fatal(ctx, "could not load seed data", zap.String("file", file), zap.Error(err))
	}

	c, closeCache := getCache(ctx, cfg)
	defer closeCache()

	seeder := seed.New(strg, lookups.New(strg, c, lookups.NewOptions(cfg)), seed.NewOptions(cfg))
	if _, err := seeder.Run(ctx, data); err != nil {
		logger.Fatal(ctx, "could not seed database", zap.Error(err))
	}
}

// seedCommand constructs the 'seed' subcommand that loads governance areas,
// barangays, indicators and the first system admin.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds reference data and the first system admin",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			file, _ := cmd.Flags().GetString("file")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			runSeed(ctx, cfg, strg, file)
		},
	}

	cmd.Flags().String("file", "", "Seed YAML file. Defaults to the bundled SGLGB data")

	return cmd
}
