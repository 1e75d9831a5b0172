package domain

import (
	"fmt"
	"strconv"
	"time"
)

// UserID uniquely identifies a user within the system.
type UserID int64

// UserRole is the role a user plays in the assessment workflow. It is stored
// as a small integer.
type UserRole int

const (
	// RoleBLGUUser is a barangay representative who fills in the assessment.
	RoleBLGUUser UserRole = 1
	// RoleAreaAssessor reviews responses for a single governance area.
	RoleAreaAssessor UserRole = 2
	// RoleSystemAdmin manages users and sees system-wide reports.
	RoleSystemAdmin UserRole = 3
)

// String returns the wire name of the role.
func (r UserRole) String() string {
	switch r {
	case RoleBLGUUser:
		return "BLGU_USER"
	case RoleAreaAssessor:
		return "AREA_ASSESSOR"
	case RoleSystemAdmin:
		return "SYSTEM_ADMIN"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r >= RoleBLGUUser && r <= RoleSystemAdmin
}

// ParseUserRole converts a wire name back to a UserRole.
func ParseUserRole(s string) (UserRole, bool) {
	for _, r := range []UserRole{RoleBLGUUser, RoleAreaAssessor, RoleSystemAdmin} {
		if r.String() == s {
			return r, true
		}
	}

	return 0, false
}

// MarshalText encodes the role by its wire name.
func (r UserRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts a wire name or the numeric value.
func (r *UserRole) UnmarshalText(b []byte) error {
	if role, ok := ParseUserRole(string(b)); ok {
		*r = role

		return nil
	}

	n, err := strconv.Atoi(string(b))
	if err != nil || !UserRole(n).Valid() {
		return fmt.Errorf("unknown role %q", b)
	}
	*r = UserRole(n)

	return nil
}

// User is an account that can sign in to the platform.
type User struct {
	ID          UserID `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number,omitempty"`

	Role UserRole `json:"role"`
	// GovernanceAreaID is only set for area assessors.
	GovernanceAreaID *GovernanceAreaID `json:"governance_area_id,omitempty"`
	// BarangayID is only set for BLGU users.
	BarangayID *BarangayID `json:"barangay_id,omitempty"`

	HashedPassword     string `json:"-"`
	MustChangePassword bool   `json:"must_change_password"`
	IsActive           bool   `json:"is_active"`
	IsSuperuser        bool   `json:"is_superuser"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleSystemAdmin || u.IsSuperuser
}
