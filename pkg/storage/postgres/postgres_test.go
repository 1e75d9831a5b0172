package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"vantage/pkg/domain"
	"vantage/pkg/storage/postgres"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	err = runMigrations(pgSQL.DB.(*sql.DB), migrationsDir)
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// fixture holds the reference rows most storage tests need.
type fixture struct {
	area      domain.GovernanceArea
	barangay  domain.Barangay
	indicator domain.Indicator
	user      domain.User
}

func seedFixture(t *testing.T, pg *postgres.PgSQL, email string) fixture {
	t.Helper()
	ctx := context.Background()

	areas, err := pg.UpsertGovernanceAreas(ctx, domain.GovernanceArea{
		Name:     "Financial Administration and Sustainability",
		AreaType: domain.AreaTypeCore,
	})
	require.NoError(t, err)
	require.Len(t, areas, 1)

	barangays, err := pg.UpsertBarangays(ctx, domain.Barangay{Name: "San Isidro"})
	require.NoError(t, err)
	require.Len(t, barangays, 1)

	indicators, err := pg.UpsertIndicators(ctx, domain.Indicator{
		Name:             "Budget transparency",
		Description:      "Posting of the annual budget",
		GovernanceAreaID: areas[0].ID,
		FormSchema: domain.FormSchema{
			"type":     "object",
			"required": []any{"posted"},
			"properties": map[string]any{
				"posted": map[string]any{"type": "string", "enum": []any{"yes", "no", "na"}},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, indicators, 1)

	user, err := pg.StoreUser(ctx, domain.User{
		Email:          email,
		Name:           "Juan Dela Cruz",
		Role:           domain.RoleBLGUUser,
		BarangayID:     &barangays[0].ID,
		HashedPassword: "hash",
		IsActive:       true,
	})
	require.NoError(t, err)

	return fixture{area: areas[0], barangay: barangays[0], indicator: indicators[0], user: *user}
}
