package postgres

import (
	"context"
	"fmt"

	"vantage/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	barangaysTable       = "barangays"
	governanceAreasTable = "governance_areas"
	indicatorsTable      = "indicators"
)

func (p *PgSQL) GovernanceAreas(ctx context.Context) ([]domain.GovernanceArea, error) {
	var rows []PgGovernanceArea
	if err := p.Builder.From(governanceAreasTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list governance areas: %w", err)
	}

	out := make([]domain.GovernanceArea, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) GovernanceAreaByID(ctx context.Context, id domain.GovernanceAreaID) (*domain.GovernanceArea, error) {
	var row PgGovernanceArea
	found, err := p.Builder.From(governanceAreasTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch governance area: %w", err)
	}
	if !found {
		return nil, nil
	}
	area := row.ToDomain()

	return &area, nil
}

func (p *PgSQL) Barangays(ctx context.Context) ([]domain.Barangay, error) {
	var rows []PgBarangay
	if err := p.Builder.From(barangaysTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list barangays: %w", err)
	}

	out := make([]domain.Barangay, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) BarangayByID(ctx context.Context, id domain.BarangayID) (*domain.Barangay, error) {
	var row PgBarangay
	found, err := p.Builder.From(barangaysTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch barangay: %w", err)
	}
	if !found {
		return nil, nil
	}
	b := row.ToDomain()

	return &b, nil
}

func (p *PgSQL) Indicators(ctx context.Context, areaIDs ...domain.GovernanceAreaID) ([]domain.Indicator, error) {
	ds := p.Builder.From(indicatorsTable).
		Order(goqu.I("governance_area_id").Asc(), goqu.I("id").Asc())
	if len(areaIDs) > 0 {
		ids := make([]int64, len(areaIDs))
		for i, id := range areaIDs {
			ids[i] = int64(id)
		}
		ds = ds.Where(goqu.I("governance_area_id").In(ids))
	}

	var rows []PgIndicator
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list indicators: %w", err)
	}

	return mapRows(rows, func(r *PgIndicator) (domain.Indicator, error) {
		ind, err := r.ToDomain()
		if err != nil {
			return domain.Indicator{}, err
		}

		return *ind, nil
	})
}

func (p *PgSQL) IndicatorByID(ctx context.Context, id domain.IndicatorID) (*domain.Indicator, error) {
	var row PgIndicator
	found, err := p.Builder.From(indicatorsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch indicator: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpsertGovernanceAreas(ctx context.Context,
	areas ...domain.GovernanceArea) ([]domain.GovernanceArea, error) {
	if len(areas) == 0 {
		return nil, nil
	}

	rows := make([]PgGovernanceArea, len(areas))
	for i, a := range areas {
		rows[i] = PgGovernanceArea{Name: a.Name, AreaType: string(a.AreaType)}
	}

	var result []PgGovernanceArea
	if err := p.Builder.Insert(governanceAreasTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("name", goqu.Record{"area_type": goqu.L("EXCLUDED.area_type")})).
		Returning(&PgGovernanceArea{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert governance areas: %w", err)
	}

	out := make([]domain.GovernanceArea, 0, len(result))
	for i := range result {
		out = append(out, result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpsertBarangays(ctx context.Context, barangays ...domain.Barangay) ([]domain.Barangay, error) {
	if len(barangays) == 0 {
		return nil, nil
	}

	rows := make([]PgBarangay, len(barangays))
	for i, b := range barangays {
		rows[i] = PgBarangay{Name: b.Name}
	}

	// DO UPDATE with a no-op assignment so that existing rows are returned too
	var result []PgBarangay
	if err := p.Builder.Insert(barangaysTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("name", goqu.Record{"name": goqu.L("EXCLUDED.name")})).
		Returning(&PgBarangay{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert barangays: %w", err)
	}

	out := make([]domain.Barangay, 0, len(result))
	for i := range result {
		out = append(out, result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpsertIndicators(ctx context.Context, indicators ...domain.Indicator) ([]domain.Indicator, error) {
	if len(indicators) == 0 {
		return nil, nil
	}

	rows := make([]PgIndicator, len(indicators))
	for i, ind := range indicators {
		if err := rows[i].FromDomain(ind); err != nil {
			return nil, err
		}
	}

	var result []PgIndicator
	if err := p.Builder.Insert(indicatorsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("governance_area_id, name", goqu.Record{
			"description": goqu.L("EXCLUDED.description"),
			"form_schema": goqu.L("EXCLUDED.form_schema"),
			"parent_id":   goqu.L("EXCLUDED.parent_id"),
		})).
		Returning(&PgIndicator{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert indicators: %w", err)
	}

	return mapRows(result, func(r *PgIndicator) (domain.Indicator, error) {
		ind, err := r.ToDomain()
		if err != nil {
			return domain.Indicator{}, err
		}

		return *ind, nil
	})
}
