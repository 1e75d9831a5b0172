package storage

import (
	"context"

	"vantage/pkg/domain"
)

// UserUpdates describes the optional fields applied by UpdateUser. Only non-nil
// fields are changed. A zero GovernanceAreaID or BarangayID clears the column.
type UserUpdates struct {
	Email              *string
	Name               *string
	PhoneNumber        *string
	Role               *domain.UserRole
	GovernanceAreaID   *domain.GovernanceAreaID
	BarangayID         *domain.BarangayID
	HashedPassword     *string
	MustChangePassword *bool
	IsActive           *bool
	IsSuperuser        *bool
}

// UserFilter narrows ListUsers. Page is 1-based.
type UserFilter struct {
	Search   string
	Role     *domain.UserRole
	IsActive *bool
	Page     uint
	Size     uint
}

// UserPage is one page of users plus the total number of matches.
type UserPage struct {
	Users []domain.User
	Total int64
}

// UserStats aggregates user counts for the admin dashboard.
type UserStats struct {
	TotalUsers              int64
	ActiveUsers             int64
	InactiveUsers           int64
	UsersNeedPasswordChange int64
	UsersByRole             map[domain.UserRole]int64
}

// UserStorage persists platform accounts.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail matches case-insensitively and returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUser applies updates and returns the updated row, or nil when not found.
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// ListUsers returns a page of users ordered by id.
	ListUsers(ctx context.Context, filter UserFilter) (UserPage, error)
	// UserStats counts users by state and role.
	UserStats(ctx context.Context) (UserStats, error)
}
