package postgres

import (
	"context"
	"fmt"

	"vantage/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	movsTable = "movs"
)

func (p *PgSQL) StoreMOV(ctx context.Context, mov domain.MOV) (*domain.MOV, error) {
	var row PgMOV
	row.FromDomain(mov)

	var result PgMOV
	if _, err := p.Builder.Insert(movsTable).
		Rows(row).
		Returning(&PgMOV{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store mov into pg: %w", err)
	}
	m := result.ToDomain()

	return &m, nil
}

func (p *PgSQL) MOVByID(ctx context.Context, id domain.MOVID) (*domain.MOV, error) {
	var row PgMOV
	found, err := p.Builder.From(movsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch mov: %w", err)
	}
	if !found {
		return nil, nil
	}
	m := row.ToDomain()

	return &m, nil
}

func (p *PgSQL) MOVsByResponses(ctx context.Context, responseIDs ...domain.ResponseID) ([]domain.MOV, error) {
	if len(responseIDs) == 0 {
		return nil, nil
	}

	var rows []PgMOV
	if err := p.Builder.From(movsTable).
		Where(goqu.I("response_id").In(int64IDs(responseIDs))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list movs: %w", err)
	}

	out := make([]domain.MOV, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) DeleteMOV(ctx context.Context, id domain.MOVID) (*domain.MOV, error) {
	var row PgMOV
	found, err := p.Builder.Delete(movsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgMOV{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete mov in pg: %w", err)
	}
	if !found {
		return nil, nil
	}
	m := row.ToDomain()

	return &m, nil
}

func int64IDs(ids []domain.ResponseID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}

	return out
}
