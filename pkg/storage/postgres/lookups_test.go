package postgres_test

import (
	"context"
	"testing"

	"vantage/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Lookups(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	areas, err := pg.UpsertGovernanceAreas(ctx,
		domain.GovernanceArea{Name: "Disaster Preparedness", AreaType: domain.AreaTypeCore},
		domain.GovernanceArea{Name: "Environmental Management", AreaType: domain.AreaTypeEssential},
	)
	require.NoError(t, err)
	require.Len(t, areas, 2)

	t.Run("upsert keeps ids of existing areas", func(t *testing.T) {
		again, err := pg.UpsertGovernanceAreas(ctx,
			domain.GovernanceArea{Name: "Disaster Preparedness", AreaType: domain.AreaTypeCore})
		require.NoError(t, err)
		require.Len(t, again, 1)
		require.Equal(t, areas[0].ID, again[0].ID)

		all, err := pg.GovernanceAreas(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Less(t, all[0].ID, all[1].ID)
	})

	t.Run("indicators with parents", func(t *testing.T) {
		parents, err := pg.UpsertIndicators(ctx, domain.Indicator{
			Name:             "BDRRMC",
			GovernanceAreaID: areas[0].ID,
		})
		require.NoError(t, err)

		children, err := pg.UpsertIndicators(ctx, domain.Indicator{
			Name:             "BDRRMC organized",
			Description:      "Executive order creating the council",
			GovernanceAreaID: areas[0].ID,
			ParentID:         &parents[0].ID,
			FormSchema:       domain.FormSchema{"required": []any{"organized"}},
		})
		require.NoError(t, err)
		require.NotNil(t, children[0].ParentID)
		require.Equal(t, parents[0].ID, *children[0].ParentID)

		ind, err := pg.IndicatorByID(ctx, children[0].ID)
		require.NoError(t, err)
		require.Equal(t, []any{"organized"}, ind.FormSchema["required"])

		inArea, err := pg.Indicators(ctx, areas[0].ID)
		require.NoError(t, err)
		require.Len(t, inArea, 2)

		none, err := pg.Indicators(ctx, areas[1].ID)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("barangays", func(t *testing.T) {
		_, err := pg.UpsertBarangays(ctx, domain.Barangay{Name: "Poblacion"}, domain.Barangay{Name: "Bagong Silang"})
		require.NoError(t, err)
		again, err := pg.UpsertBarangays(ctx, domain.Barangay{Name: "Poblacion"})
		require.NoError(t, err)
		require.Len(t, again, 1)

		all, err := pg.Barangays(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		b, err := pg.BarangayByID(ctx, again[0].ID)
		require.NoError(t, err)
		require.Equal(t, "Poblacion", b.Name)

		missing, err := pg.BarangayByID(ctx, 424242)
		require.NoError(t, err)
		require.Nil(t, missing)
	})
}
