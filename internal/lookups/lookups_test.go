package lookups_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vantage/internal/lookups"
	"vantage/pkg/cache"
	mockcache "vantage/pkg/cache/mock"
	"vantage/pkg/domain"
	mockstorage "vantage/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_GovernanceAreas_CachesOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mockcache.NewMockCache(ctrl)
	svc := lookups.New(st, c, lookups.Options{TTL: time.Minute})

	areas := []domain.GovernanceArea{{ID: 1, Name: "Disaster Preparedness", AreaType: domain.AreaTypeCore}}
	c.EXPECT().Get(gomock.Any(), "vantage:lookups:governance_areas").Return(nil, cache.ErrMiss)
	st.EXPECT().GovernanceAreas(gomock.Any()).Return(areas, nil)
	c.EXPECT().Set(gomock.Any(), "vantage:lookups:governance_areas", gomock.Any(), time.Minute).Return(nil)

	got, err := svc.GovernanceAreas(context.Background())
	require.NoError(t, err)
	require.Equal(t, areas, got)
}

func TestService_Barangays_FromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mockcache.NewMockCache(ctrl)
	svc := lookups.New(st, c, lookups.Options{TTL: time.Minute})

	cached, err := json.Marshal([]domain.Barangay{{ID: 3, Name: "San Isidro"}})
	require.NoError(t, err)
	c.EXPECT().Get(gomock.Any(), "vantage:lookups:barangays").Return(cached, nil)

	got, err := svc.Barangays(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.Barangay{{ID: 3, Name: "San Isidro"}}, got)
}

func TestService_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := lookups.New(st, cache.NewMemory(), lookups.Options{TTL: time.Minute})

	st.EXPECT().Barangays(gomock.Any()).Return(nil, errors.New("db down"))
	_, err := svc.Barangays(context.Background())
	require.Error(t, err)
}

func TestService_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockcache.NewMockCache(ctrl)
	svc := lookups.New(mockstorage.NewMockStorage(ctrl), c, lookups.Options{})

	c.EXPECT().Del(gomock.Any(), "vantage:lookups:governance_areas", "vantage:lookups:barangays").Return(nil)
	require.NoError(t, svc.Invalidate(context.Background()))
}
