// Package users implements account administration and self-service profile
// updates.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vantage/internal/auth"
	"vantage/pkg/domain"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when List is called without a size.
	DefaultPageSize = 10
	// MaxPageSize bounds the page size of List.
	MaxPageSize = 100
)

const (
	msgEmailTaken   = "Email already registered"
	msgAreaRequired = "Governance area is required for Area Assessor role."
	msgNotFound     = "User not found"
)

type service struct {
	storage storage.Storage
}

var _ Service = (*service)(nil)

func (s service) List(ctx context.Context, params ListParams) (*Page, error) {
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Size == 0 {
		params.Size = DefaultPageSize
	}
	if params.Size > MaxPageSize {
		return nil, serrors.With(serrors.ErrBadRequest, "size must not exceed %d", MaxPageSize)
	}
	if params.Role != nil && !params.Role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid role")
	}

	res, err := s.storage.ListUsers(ctx, storage.UserFilter{
		Search:   strings.TrimSpace(params.Search),
		Role:     params.Role,
		IsActive: params.IsActive,
		Page:     params.Page,
		Size:     params.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	size := int64(params.Size)

	return &Page{
		Users:      res.Users,
		Total:      res.Total,
		Page:       params.Page,
		Size:       params.Size,
		TotalPages: (res.Total + size - 1) / size,
	}, nil
}

func (s service) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgNotFound)
	}

	return user, nil
}

func (s service) Create(ctx context.Context, params CreateParams) (*domain.User, error) {
	email := normalizeEmail(params.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, serrors.With(serrors.ErrBadRequest, "A valid email is required")
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Name is required")
	}
	if params.Password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Password is required")
	}
	if !params.Role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid role")
	}

	user := domain.User{
		Email:              email,
		Name:               strings.TrimSpace(params.Name),
		PhoneNumber:        params.PhoneNumber,
		Role:               params.Role,
		MustChangePassword: true,
		IsActive:           true,
		IsSuperuser:        params.IsSuperuser,
	}
	if params.IsActive != nil {
		user.IsActive = *params.IsActive
	}

	if params.Role == domain.RoleAreaAssessor {
		if params.GovernanceAreaID == nil || *params.GovernanceAreaID == 0 {
			return nil, serrors.With(serrors.ErrBadRequest, msgAreaRequired)
		}
		user.GovernanceAreaID = params.GovernanceAreaID
	} else if params.BarangayID != nil && *params.BarangayID != 0 {
		user.BarangayID = params.BarangayID
	}

	if err := s.checkReferences(ctx, user.GovernanceAreaID, user.BarangayID); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hashed

	stored, err := s.storage.StoreUser(ctx, user)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrBadRequest, msgEmailTaken)
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}
	logger.Info(ctx, "user created",
		zap.Int64("user_id", int64(stored.ID)),
		zap.String("role", stored.Role.String()))

	return stored, nil
}

func (s service) Update(ctx context.Context, id domain.UserID, params UpdateParams) (*domain.User, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := storage.UserUpdates{
		Name:        params.Name,
		PhoneNumber: params.PhoneNumber,
		IsActive:    params.IsActive,
		IsSuperuser: params.IsSuperuser,
	}

	role := current.Role
	if params.Role != nil {
		if !params.Role.Valid() {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid role")
		}
		role = *params.Role
		updates.Role = params.Role
	}

	var none domain.GovernanceAreaID
	var noBarangay domain.BarangayID
	if role == domain.RoleAreaAssessor {
		switch {
		case params.GovernanceAreaID != nil && *params.GovernanceAreaID != 0:
			updates.GovernanceAreaID = params.GovernanceAreaID
		case params.GovernanceAreaID == nil && current.GovernanceAreaID != nil:
		default:
			return nil, serrors.With(serrors.ErrBadRequest, msgAreaRequired)
		}
		updates.BarangayID = &noBarangay
	} else {
		updates.GovernanceAreaID = &none
		if params.BarangayID != nil {
			updates.BarangayID = params.BarangayID
		}
	}

	if err := s.checkReferences(ctx, nonZeroArea(updates.GovernanceAreaID), nonZeroBarangay(updates.BarangayID)); err != nil {
		return nil, err
	}

	if params.Email != nil {
		email := normalizeEmail(*params.Email)
		if email != current.Email {
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
			updates.Email = &email
		}
	}

	return s.update(ctx, id, updates)
}

func (s service) SetActive(ctx context.Context, id domain.UserID, active bool) (*domain.User, error) {
	user, err := s.update(ctx, id, storage.UserUpdates{IsActive: &active})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "user activation changed", zap.Int64("user_id", int64(id)), zap.Bool("active", active))

	return user, nil
}

func (s service) ResetPassword(ctx context.Context, id domain.UserID, password string) (*domain.User, error) {
	if password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Password is required")
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	mustChange := true

	return s.update(ctx, id, storage.UserUpdates{HashedPassword: &hashed, MustChangePassword: &mustChange})
}

func (s service) Stats(ctx context.Context) (*Stats, error) {
	st, err := s.storage.UserStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user stats: %w", err)
	}

	byRole := make(map[string]int64, len(st.UsersByRole))
	for role, n := range st.UsersByRole {
		byRole[role.String()] = n
	}

	return &Stats{
		TotalUsers:              st.TotalUsers,
		ActiveUsers:             st.ActiveUsers,
		InactiveUsers:           st.InactiveUsers,
		UsersNeedPasswordChange: st.UsersNeedPasswordChange,
		UsersByRole:             byRole,
	}, nil
}

func (s service) UpdateProfile(ctx context.Context, id domain.UserID, params ProfileParams) (*domain.User, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := storage.UserUpdates{Name: params.Name, PhoneNumber: params.PhoneNumber}
	if params.Email != nil {
		email := normalizeEmail(*params.Email)
		if email != current.Email {
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
			updates.Email = &email
		}
	}

	return s.update(ctx, id, updates)
}

func (s service) update(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	user, err := s.storage.UpdateUser(ctx, id, updates)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrBadRequest, msgEmailTaken)
	}
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgNotFound)
	}

	return user, nil
}

func (s service) checkEmailFree(ctx context.Context, email string) error {
	existing, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("could not check email: %w", err)
	}
	if existing != nil {
		return serrors.With(serrors.ErrBadRequest, msgEmailTaken)
	}

	return nil
}

func (s service) checkReferences(ctx context.Context, areaID *domain.GovernanceAreaID, barangayID *domain.BarangayID) error {
	if areaID != nil {
		area, err := s.storage.GovernanceAreaByID(ctx, *areaID)
		if err != nil {
			return fmt.Errorf("could not get governance area: %w", err)
		}
		if area == nil {
			return serrors.With(serrors.ErrBadRequest, "Governance area not found")
		}
	}
	if barangayID != nil {
		b, err := s.storage.BarangayByID(ctx, *barangayID)
		if err != nil {
			return fmt.Errorf("could not get barangay: %w", err)
		}
		if b == nil {
			return serrors.With(serrors.ErrBadRequest, "Barangay not found")
		}
	}

	return nil
}

func nonZeroArea(id *domain.GovernanceAreaID) *domain.GovernanceAreaID {
	if id == nil || *id == 0 {
		return nil
	}

	return id
}

func nonZeroBarangay(id *domain.BarangayID) *domain.BarangayID {
	if id == nil || *id == 0 {
		return nil
	}

	return id
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// New creates a users Service backed by storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
