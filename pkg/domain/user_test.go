package domain_test

import (
	"encoding/json"
	"testing"

	"vantage/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestUserRole_JSON(t *testing.T) {
	b, err := json.Marshal(domain.User{ID: 1, Role: domain.RoleAreaAssessor})
	require.NoError(t, err)
	require.Contains(t, string(b), `"role":"AREA_ASSESSOR"`)

	var u domain.User
	require.NoError(t, json.Unmarshal([]byte(`{"role":"SYSTEM_ADMIN"}`), &u))
	require.Equal(t, domain.RoleSystemAdmin, u.Role)

	var r domain.UserRole
	require.NoError(t, r.UnmarshalText([]byte("1")))
	require.Equal(t, domain.RoleBLGUUser, r)
	require.Error(t, r.UnmarshalText([]byte("ROOT")))
	require.Error(t, r.UnmarshalText([]byte("9")))
}

func TestUser_IsAdmin(t *testing.T) {
	require.True(t, (&domain.User{Role: domain.RoleSystemAdmin}).IsAdmin())
	require.True(t, (&domain.User{Role: domain.RoleBLGUUser, IsSuperuser: true}).IsAdmin())
	require.False(t, (&domain.User{Role: domain.RoleAreaAssessor}).IsAdmin())
}

func TestAssessmentStatus_Editable(t *testing.T) {
	require.True(t, domain.AssessmentStatusDraft.Editable())
	require.True(t, domain.AssessmentStatusNeedsRework.Editable())
	require.False(t, domain.AssessmentStatusSubmittedForReview.Editable())
	require.False(t, domain.AssessmentStatusValidated.Editable())
}
