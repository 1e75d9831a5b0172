package users

import (
	"context"

	"vantage/pkg/domain"
)

// ListParams filters and paginates List. Page is 1-based.
type ListParams struct {
	Search   string
	Role     *domain.UserRole
	IsActive *bool
	Page     uint
	Size     uint
}

// Page is one page of users.
type Page struct {
	Users      []domain.User `json:"users"`
	Total      int64         `json:"total"`
	Page       uint          `json:"page"`
	Size       uint          `json:"size"`
	TotalPages int64         `json:"total_pages"`
}

// CreateParams describes a new account created by an administrator.
type CreateParams struct {
	Email            string
	Name             string
	PhoneNumber      string
	Password         string
	Role             domain.UserRole
	GovernanceAreaID *domain.GovernanceAreaID
	BarangayID       *domain.BarangayID
	IsActive         *bool
	IsSuperuser      bool
}

// UpdateParams describes an administrative update. Nil fields are unchanged.
type UpdateParams struct {
	Email            *string
	Name             *string
	PhoneNumber      *string
	Role             *domain.UserRole
	GovernanceAreaID *domain.GovernanceAreaID
	BarangayID       *domain.BarangayID
	IsActive         *bool
	IsSuperuser      *bool
}

// ProfileParams describes the fields users may change on their own account.
type ProfileParams struct {
	Email       *string
	Name        *string
	PhoneNumber *string
}

// Stats summarises accounts for the admin dashboard.
type Stats struct {
	TotalUsers              int64            `json:"total_users"`
	ActiveUsers             int64            `json:"active_users"`
	InactiveUsers           int64            `json:"inactive_users"`
	UsersNeedPasswordChange int64            `json:"users_need_password_change"`
	UsersByRole             map[string]int64 `json:"users_by_role"`
}

// Service manages platform accounts.
//
//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Service interface {
	List(ctx context.Context, params ListParams) (*Page, error)
	Get(ctx context.Context, id domain.UserID) (*domain.User, error)
	Create(ctx context.Context, params CreateParams) (*domain.User, error)
	Update(ctx context.Context, id domain.UserID, params UpdateParams) (*domain.User, error)
	// SetActive activates or deactivates an account.
	SetActive(ctx context.Context, id domain.UserID, active bool) (*domain.User, error)
	// ResetPassword sets a new password and forces the user to change it.
	ResetPassword(ctx context.Context, id domain.UserID, password string) (*domain.User, error)
	Stats(ctx context.Context) (*Stats, error)
	// UpdateProfile updates the caller's own account.
	UpdateProfile(ctx context.Context, id domain.UserID, params ProfileParams) (*domain.User, error)
}
