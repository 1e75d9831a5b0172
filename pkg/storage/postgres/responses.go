package postgres

import (
	"context"
	"fmt"

	"vantage/pkg/domain"
	"vantage/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	responsesTable = "assessment_responses"
)

// StoreResponse is idempotent on (assessment_id, indicator_id): when a
// response already exists it is returned unchanged.
func (p *PgSQL) StoreResponse(ctx context.Context,
	response domain.AssessmentResponse) (*domain.AssessmentResponse, error) {
	var row PgResponse
	if err := row.FromDomain(response); err != nil {
		return nil, err
	}

	var result PgResponse
	found, err := p.Builder.Insert(responsesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgResponse{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store response into pg: %w", err)
	}
	if found {
		return result.ToDomain()
	}

	existing, err := p.responseWhere(ctx,
		goqu.I("assessment_id").Eq(int64(response.AssessmentID)),
		goqu.I("indicator_id").Eq(int64(response.IndicatorID)),
	)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("response for indicator %d vanished after conflict", response.IndicatorID)
	}

	return existing, nil
}

func (p *PgSQL) ResponseByID(ctx context.Context, id domain.ResponseID) (*domain.AssessmentResponse, error) {
	return p.responseWhere(ctx, goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) responseWhere(ctx context.Context, exps ...goqu.Expression) (*domain.AssessmentResponse, error) {
	var row PgResponse
	found, err := p.Builder.From(responsesTable).Where(exps...).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch response: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) ResponsesByAssessment(ctx context.Context,
	assessmentID domain.AssessmentID) ([]domain.AssessmentResponse, error) {
	var rows []PgResponse
	if err := p.Builder.From(responsesTable).
		Where(goqu.I("assessment_id").Eq(int64(assessmentID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list responses: %w", err)
	}

	return mapRows(rows, func(r *PgResponse) (domain.AssessmentResponse, error) {
		d, err := r.ToDomain()
		if err != nil {
			return domain.AssessmentResponse{}, err
		}

		return *d, nil
	})
}

func (p *PgSQL) UpdateResponse(ctx context.Context,
	id domain.ResponseID,
	updates storage.ResponseUpdates) (*domain.AssessmentResponse, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.ResponseData != nil {
		b, err := marshalResponseData(updates.ResponseData)
		if err != nil {
			return nil, err
		}
		rec["response_data"] = b
	}
	if updates.IsCompleted != nil {
		rec["is_completed"] = *updates.IsCompleted
	}
	if updates.RequiresRework != nil {
		rec["requires_rework"] = *updates.RequiresRework
	}
	if updates.ValidationStatus != nil {
		rec["validation_status"] = string(*updates.ValidationStatus)
	}

	where := []goqu.Expression{goqu.I("id").Eq(int64(id))}
	if updates.WhereAssessmentStatus != nil {
		where = append(where, goqu.I("assessment_id").In(
			p.Builder.From(assessmentsTable).
				Select("id").
				Where(goqu.I("status").In(statusStrings(updates.WhereAssessmentStatus))),
		))
	}

	var row PgResponse
	found, err := p.Builder.Update(responsesTable).
		Set(rec).
		Where(where...).
		Returning(&PgResponse{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update response in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) MarkResponsesForRework(ctx context.Context, assessmentID domain.AssessmentID) (int64, error) {
	res, err := p.Builder.Update(responsesTable).
		Set(goqu.Record{
			"requires_rework": true,
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("assessment_id").Eq(int64(assessmentID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark responses for rework: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
