package users_test

import (
	"context"
	"fmt"
	"testing"

	"vantage/internal/auth"
	"vantage/internal/users"
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

func newTestService(t *testing.T) (*mockstorage.MockStorage, users.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, users.New(st)
}

func ptr[T any](v T) *T { return &v }

func TestService_List(t *testing.T) {
	st, svc := newTestService(t)
	role := domain.RoleAreaAssessor

	st.EXPECT().ListUsers(gomock.Any(), storage.UserFilter{Search: "juan", Role: &role, Page: 2, Size: 10}).
		Return(storage.UserPage{Users: []domain.User{{ID: 11}}, Total: 21}, nil)

	page, err := svc.List(context.Background(), users.ListParams{Search: " juan ", Role: &role, Page: 2})
	require.NoError(t, err)
	require.Equal(t, int64(21), page.Total)
	require.Equal(t, int64(3), page.TotalPages)
	require.Equal(t, uint(2), page.Page)
	require.Equal(t, uint(10), page.Size)
	require.Len(t, page.Users, 1)
}

func TestService_List_Invalid(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.List(context.Background(), users.ListParams{Size: 101})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.List(context.Background(), users.ListParams{Role: ptr(domain.UserRole(9))})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Create_Assessor(t *testing.T) {
	st, svc := newTestService(t)
	area := domain.GovernanceAreaID(2)
	barangay := domain.BarangayID(4)

	st.EXPECT().GovernanceAreaByID(gomock.Any(), area).Return(&domain.GovernanceArea{ID: area}, nil)
	st.EXPECT().UserByEmail(gomock.Any(), "assessor@example.com").Return(nil, nil)
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u domain.User) (*domain.User, error) {
		require.Equal(t, "assessor@example.com", u.Email)
		require.Equal(t, &area, u.GovernanceAreaID)
		require.Nil(t, u.BarangayID, "assessors never belong to a barangay")
		require.True(t, u.MustChangePassword)
		require.True(t, u.IsActive)
		require.True(t, auth.CheckPassword(u.HashedPassword, "initial"))
		u.ID = 3

		return &u, nil
	})

	u, err := svc.Create(context.Background(), users.CreateParams{
		Email:            " Assessor@Example.com",
		Name:             "Maria",
		Password:         "initial",
		Role:             domain.RoleAreaAssessor,
		GovernanceAreaID: &area,
		BarangayID:       &barangay,
	})
	require.NoError(t, err)
	require.Equal(t, domain.UserID(3), u.ID)
}

func TestService_Create_DuplicateRace(t *testing.T) {
	st, svc := newTestService(t)

	st.EXPECT().UserByEmail(gomock.Any(), "admin2@example.com").Return(nil, nil)
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not store user into pg: %w", storage.ErrDuplicate))

	_, err := svc.Create(context.Background(), users.CreateParams{
		Email: "admin2@example.com", Name: "Ana", Password: "pw", Role: domain.RoleSystemAdmin,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Email already registered", serrors.MessageOf(err))
}

func TestService_Create_BLGUDropsArea(t *testing.T) {
	st, svc := newTestService(t)
	area := domain.GovernanceAreaID(2)
	barangay := domain.BarangayID(4)

	st.EXPECT().BarangayByID(gomock.Any(), barangay).Return(&domain.Barangay{ID: barangay}, nil)
	st.EXPECT().UserByEmail(gomock.Any(), "blgu@example.com").Return(nil, nil)
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u domain.User) (*domain.User, error) {
		require.Nil(t, u.GovernanceAreaID)
		require.Equal(t, &barangay, u.BarangayID)

		return &u, nil
	})

	_, err := svc.Create(context.Background(), users.CreateParams{
		Email: "blgu@example.com", Name: "Juan", Password: "pw", Role: domain.RoleBLGUUser,
		GovernanceAreaID: &area, BarangayID: &barangay,
	})
	require.NoError(t, err)
}

func TestService_Create_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("assessor without area", func(t *testing.T) {
		_, svc := newTestService(t)
		_, err := svc.Create(ctx, users.CreateParams{Email: "a@b.c", Name: "A", Password: "p", Role: domain.RoleAreaAssessor})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.Equal(t, "Governance area is required for Area Assessor role.", err.Error())
	})

	t.Run("email taken", func(t *testing.T) {
		st, svc := newTestService(t)
		st.EXPECT().UserByEmail(gomock.Any(), "a@b.c").Return(&domain.User{ID: 1}, nil)
		_, err := svc.Create(ctx, users.CreateParams{Email: "a@b.c", Name: "A", Password: "p", Role: domain.RoleSystemAdmin})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.Equal(t, "Email already registered", err.Error())
	})

	t.Run("unknown area", func(t *testing.T) {
		st, svc := newTestService(t)
		st.EXPECT().GovernanceAreaByID(gomock.Any(), domain.GovernanceAreaID(9)).Return(nil, nil)
		_, err := svc.Create(ctx, users.CreateParams{
			Email: "a@b.c", Name: "A", Password: "p", Role: domain.RoleAreaAssessor, GovernanceAreaID: ptr(domain.GovernanceAreaID(9)),
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, svc := newTestService(t)
		for _, p := range []users.CreateParams{
			{Email: "nope", Name: "A", Password: "p", Role: domain.RoleBLGUUser},
			{Email: "a@b.c", Password: "p", Role: domain.RoleBLGUUser},
			{Email: "a@b.c", Name: "A", Role: domain.RoleBLGUUser},
			{Email: "a@b.c", Name: "A", Password: "p"},
		} {
			_, err := svc.Create(ctx, p)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		}
	})
}

func TestService_Update_RoleRules(t *testing.T) {
	ctx := context.Background()
	area := domain.GovernanceAreaID(2)

	t.Run("to assessor keeps existing area and clears barangay", func(t *testing.T) {
		st, svc := newTestService(t)
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).
			Return(&domain.User{ID: 1, Email: "a@b.c", Role: domain.RoleBLGUUser, GovernanceAreaID: &area}, nil)
		st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, upd storage.UserUpdates) (*domain.User, error) {
				require.Equal(t, domain.RoleAreaAssessor, *upd.Role)
				require.Nil(t, upd.GovernanceAreaID)
				require.Equal(t, domain.BarangayID(0), *upd.BarangayID)
				require.Nil(t, upd.Email)

				return &domain.User{ID: 1}, nil
			})

		_, err := svc.Update(ctx, 1, users.UpdateParams{Role: ptr(domain.RoleAreaAssessor), Email: ptr("A@B.C")})
		require.NoError(t, err)
	})

	t.Run("to assessor without area", func(t *testing.T) {
		st, svc := newTestService(t)
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(&domain.User{ID: 1, Role: domain.RoleBLGUUser}, nil)

		_, err := svc.Update(ctx, 1, users.UpdateParams{Role: ptr(domain.RoleAreaAssessor)})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("non assessor clears area and checks new email", func(t *testing.T) {
		st, svc := newTestService(t)
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).
			Return(&domain.User{ID: 1, Email: "old@b.c", Role: domain.RoleAreaAssessor, GovernanceAreaID: &area}, nil)
		st.EXPECT().UserByEmail(gomock.Any(), "new@b.c").Return(nil, nil)
		st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, upd storage.UserUpdates) (*domain.User, error) {
				require.Equal(t, domain.GovernanceAreaID(0), *upd.GovernanceAreaID)
				require.Equal(t, "new@b.c", *upd.Email)

				return &domain.User{ID: 1}, nil
			})

		_, err := svc.Update(ctx, 1, users.UpdateParams{Role: ptr(domain.RoleSystemAdmin), Email: ptr("new@b.c")})
		require.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		st, svc := newTestService(t)
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(nil, nil)

		_, err := svc.Update(ctx, 1, users.UpdateParams{})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestService_SetActiveAndReset(t *testing.T) {
	st, svc := newTestService(t)
	ctx := context.Background()

	st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(4), storage.UserUpdates{IsActive: ptr(false)}).
		Return(&domain.User{ID: 4}, nil)
	_, err := svc.SetActive(ctx, 4, false)
	require.NoError(t, err)

	st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(5), gomock.Any()).Return(nil, nil)
	_, err = svc.SetActive(ctx, 5, true)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, upd storage.UserUpdates) (*domain.User, error) {
			require.True(t, *upd.MustChangePassword)
			require.True(t, auth.CheckPassword(*upd.HashedPassword, "temp123"))

			return &domain.User{ID: 4}, nil
		})
	_, err = svc.ResetPassword(ctx, 4, "temp123")
	require.NoError(t, err)
}

func TestService_Stats(t *testing.T) {
	st, svc := newTestService(t)
	st.EXPECT().UserStats(gomock.Any()).Return(storage.UserStats{
		TotalUsers: 3, ActiveUsers: 2, InactiveUsers: 1, UsersNeedPasswordChange: 1,
		UsersByRole: map[domain.UserRole]int64{domain.RoleBLGUUser: 2, domain.RoleSystemAdmin: 1},
	}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"BLGU_USER": 2, "SYSTEM_ADMIN": 1}, stats.UsersByRole)
	require.Equal(t, int64(3), stats.TotalUsers)
}

func TestService_UpdateProfile(t *testing.T) {
	st, svc := newTestService(t)
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(&domain.User{ID: 1, Email: "me@b.c"}, nil)
	st.EXPECT().UserByEmail(gomock.Any(), "taken@b.c").Return(&domain.User{ID: 2}, nil)

	_, err := svc.UpdateProfile(context.Background(), 1, users.ProfileParams{Email: ptr("taken@b.c")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
