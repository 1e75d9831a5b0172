package postgres

import (
	"context"
	"fmt"
	"strings"

	"vantage/pkg/domain"
	"vantage/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)
	row.Email = strings.ToLower(strings.TrimSpace(row.Email))

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", classify(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(int64(id)))
}

// UserByEmail matches emails case-insensitively.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.Func("LOWER", goqu.I("email")).Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (p *PgSQL) userWhere(ctx context.Context, exp goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).Where(exp).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUser sets only the provided fields and refreshes updated_at.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Email != nil {
		rec["email"] = strings.ToLower(strings.TrimSpace(*updates.Email))
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.PhoneNumber != nil {
		if *updates.PhoneNumber == "" {
			rec["phone_number"] = goqu.L("NULL")
		} else {
			rec["phone_number"] = *updates.PhoneNumber
		}
	}
	if updates.Role != nil {
		rec["role"] = int16(*updates.Role) //nolint: gosec
	}
	if updates.GovernanceAreaID != nil {
		rec["governance_area_id"] = nullableID(int64(*updates.GovernanceAreaID))
	}
	if updates.BarangayID != nil {
		rec["barangay_id"] = nullableID(int64(*updates.BarangayID))
	}
	if updates.HashedPassword != nil {
		rec["hashed_password"] = *updates.HashedPassword
	}
	if updates.MustChangePassword != nil {
		rec["must_change_password"] = *updates.MustChangePassword
	}
	if updates.IsActive != nil {
		rec["is_active"] = *updates.IsActive
	}
	if updates.IsSuperuser != nil {
		rec["is_superuser"] = *updates.IsSuperuser
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", classify(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ListUsers returns a page of users ordered by id together with the total
// number of users matching the filter.
func (p *PgSQL) ListUsers(ctx context.Context, filter storage.UserFilter) (storage.UserPage, error) {
	var w []goqu.Expression
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		w = append(w, goqu.Or(
			goqu.I("name").ILike(pattern),
			goqu.I("email").ILike(pattern),
		))
	}
	if filter.Role != nil {
		w = append(w, goqu.I("role").Eq(int16(*filter.Role))) //nolint: gosec
	}
	if filter.IsActive != nil {
		w = append(w, goqu.I("is_active").Eq(*filter.IsActive))
	}

	total, err := p.Builder.From(usersTable).Where(w...).CountContext(ctx)
	if err != nil {
		return storage.UserPage{}, fmt.Errorf("could not count users: %w", err)
	}

	page := max(filter.Page, 1)
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(w...).
		Order(goqu.I("id").Asc()).
		Offset((page - 1) * filter.Size).
		Limit(filter.Size).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPage{}, fmt.Errorf("could not list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].ToDomain())
	}

	return storage.UserPage{Users: users, Total: total}, nil
}

func (p *PgSQL) UserStats(ctx context.Context) (storage.UserStats, error) {
	var totals struct {
		Total              int64 `db:"total"`
		Active             int64 `db:"active"`
		NeedPasswordChange int64 `db:"need_password_change"`
	}
	if _, err := p.Builder.From(usersTable).
		Select(
			goqu.COUNT("*").As("total"),
			goqu.L("COUNT(*) FILTER (WHERE is_active)").As("active"),
			goqu.L("COUNT(*) FILTER (WHERE must_change_password)").As("need_password_change"),
		).
		Executor().ScanStructContext(ctx, &totals); err != nil {
		return storage.UserStats{}, fmt.Errorf("could not count users: %w", err)
	}

	var byRole []struct {
		Role  int16 `db:"role"`
		Count int64 `db:"count"`
	}
	if err := p.Builder.From(usersTable).
		Select(goqu.I("role"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.I("role")).
		Executor().ScanStructsContext(ctx, &byRole); err != nil {
		return storage.UserStats{}, fmt.Errorf("could not count users by role: %w", err)
	}

	stats := storage.UserStats{
		TotalUsers:              totals.Total,
		ActiveUsers:             totals.Active,
		InactiveUsers:           totals.Total - totals.Active,
		UsersNeedPasswordChange: totals.NeedPasswordChange,
		UsersByRole:             make(map[domain.UserRole]int64, len(byRole)),
	}
	for _, r := range byRole {
		stats.UsersByRole[domain.UserRole(r.Role)] = r.Count
	}

	return stats, nil
}

// nullableID maps a zero id to NULL.
func nullableID(id int64) any {
	if id == 0 {
		return goqu.L("NULL")
	}

	return id
}
