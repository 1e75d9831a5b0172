package seed_test

import (
	"context"
	"errors"
	"testing"

	"vantage/internal/auth"
	mocklookups "vantage/internal/lookups/mock"
	"vantage/internal/seed"
	"vantage/pkg/domain"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"
	mockstorage "vantage/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestDefault(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)
	require.Len(t, data.GovernanceAreas, 6)
	require.NotEmpty(t, data.Barangays)

	types := map[domain.AreaType]int{}
	for _, a := range data.GovernanceAreas {
		types[a.Type]++
		require.NotEmpty(t, a.Indicators, a.Name)
	}
	require.Equal(t, 3, types[domain.AreaTypeCore])
	require.Equal(t, 3, types[domain.AreaTypeEssential])

	require.Equal(t, "Financial Administration and Sustainability", data.GovernanceAreas[0].Name)
	require.NotEmpty(t, data.GovernanceAreas[0].Indicators[0].Children)
	require.Equal(t, "object", data.GovernanceAreas[0].Indicators[0].FormSchema["type"])
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown type": `
governanceAreas:
  - name: Disaster Preparedness
    type: Optional
`,
		"duplicate indicator": `
governanceAreas:
  - name: Disaster Preparedness
    type: Core
    indicators:
      - name: Plan
        children:
          - name: Plan
`,
		"missing name": `
governanceAreas:
  - type: Core
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := seed.Parse([]byte(doc))
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}

	_, err := seed.Parse([]byte("governanceAreas: ["))
	require.Error(t, err)
}

const smallData = `
governanceAreas:
  - name: Disaster Preparedness
    type: Core
    indicators:
      - name: DRR Plan
        formSchema:
          type: object
        children:
          - name: DRR Plan Updated
barangays: [Poblacion, Rizal]
`

type fixture struct {
	st      *mockstorage.MockStorage
	lookups *mocklookups.MockService
	ctrl    *gomock.Controller
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	return fixture{
		st:      mockstorage.NewMockStorage(ctrl),
		lookups: mocklookups.NewMockService(ctrl),
		ctrl:    ctrl,
	}
}

func (f fixture) withTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func expectReferenceData(t *testing.T, tx *mockstorage.MockAllStorage) {
	t.Helper()

	tx.EXPECT().UpsertGovernanceAreas(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, areas ...domain.GovernanceArea) ([]domain.GovernanceArea, error) {
			require.Equal(t, []domain.GovernanceArea{{Name: "Disaster Preparedness", AreaType: domain.AreaTypeCore}}, areas)

			return []domain.GovernanceArea{{ID: 2, Name: "Disaster Preparedness", AreaType: domain.AreaTypeCore}}, nil
		})
	tx.EXPECT().UpsertBarangays(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, barangays ...domain.Barangay) ([]domain.Barangay, error) {
			require.Equal(t, []domain.Barangay{{Name: "Poblacion"}, {Name: "Rizal"}}, barangays)

			return []domain.Barangay{{ID: 1, Name: "Poblacion"}, {ID: 2, Name: "Rizal"}}, nil
		})

	gomock.InOrder(
		tx.EXPECT().UpsertIndicators(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inds ...domain.Indicator) ([]domain.Indicator, error) {
				require.Len(t, inds, 1)
				require.Equal(t, "DRR Plan", inds[0].Name)
				require.Equal(t, domain.GovernanceAreaID(2), inds[0].GovernanceAreaID)
				require.Nil(t, inds[0].ParentID)
				inds[0].ID = 10

				return inds, nil
			}),
		tx.EXPECT().UpsertIndicators(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inds ...domain.Indicator) ([]domain.Indicator, error) {
				require.Len(t, inds, 1)
				require.Equal(t, "DRR Plan Updated", inds[0].Name)
				require.NotNil(t, inds[0].ParentID)
				require.Equal(t, domain.IndicatorID(10), *inds[0].ParentID)
				inds[0].ID = 11

				return inds, nil
			}),
	)
}

func TestSeeder_Run(t *testing.T) {
	f := newFixture(t)
	data, err := seed.Parse([]byte(smallData))
	require.NoError(t, err)

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		expectReferenceData(t, tx)
		tx.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				require.Equal(t, domain.RoleSystemAdmin, u.Role)
				require.True(t, u.IsSuperuser)
				require.True(t, u.IsActive)
				require.True(t, auth.CheckPassword(u.HashedPassword, "s3cret!"))
				u.ID = 1

				return &u, nil
			})
	})
	f.lookups.EXPECT().Invalidate(gomock.Any()).Return(nil)

	seeder := seed.New(f.st, f.lookups, seed.Options{SuperuserEmail: " admin@example.com ", SuperuserPassword: "s3cret!"})
	summary, err := seeder.Run(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, seed.Summary{GovernanceAreas: 1, Barangays: 2, Indicators: 2, SuperuserCreated: true}, summary)
}

func TestSeeder_Run_ExistingSuperuser(t *testing.T) {
	f := newFixture(t)
	data, err := seed.Parse([]byte(smallData))
	require.NoError(t, err)

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		expectReferenceData(t, tx)
		tx.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{ID: 1}, nil)
	})
	f.lookups.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	seeder := seed.New(f.st, f.lookups, seed.Options{SuperuserEmail: "admin@example.com", SuperuserPassword: "x"})
	summary, err := seeder.Run(context.Background(), data)
	require.NoError(t, err)
	require.False(t, summary.SuperuserCreated)
}

func TestSeeder_Run_NoSuperuserPassword(t *testing.T) {
	f := newFixture(t)
	data, err := seed.Parse([]byte(smallData))
	require.NoError(t, err)

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		expectReferenceData(t, tx)
	})

	summary, err := seed.New(f.st, nil, seed.Options{SuperuserEmail: "admin@example.com"}).Run(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Indicators)
	require.False(t, summary.SuperuserCreated)
}

func TestSeeder_Run_Error(t *testing.T) {
	f := newFixture(t)
	data, err := seed.Parse([]byte(smallData))
	require.NoError(t, err)

	f.withTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertGovernanceAreas(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	})

	_, err = seed.New(f.st, f.lookups, seed.Options{}).Run(context.Background(), data)
	require.ErrorContains(t, err, "could not seed database")
}
