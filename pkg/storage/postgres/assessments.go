package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"vantage/pkg/domain"
	"vantage/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	assessmentsTable = "assessments"
)

// assessmentColumns lists the assessment columns qualified with alias so they
// can be selected next to joined tables.
func assessmentColumns(alias string) []any {
	cols := []string{
		"id", "status", "blgu_user_id", "rework_count", "submitted_at", "validated_at",
		"final_compliance_status", "area_results", "ai_recommendations", "created_at", "updated_at",
	}
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = goqu.T(alias).Col(c).As(c)
	}

	return out
}

// EnsureAssessment creates a Draft assessment for the user unless one
// already exists, then returns the user's assessment.
func (p *PgSQL) EnsureAssessment(ctx context.Context, userID domain.UserID) (*domain.Assessment, error) {
	if _, err := p.Builder.Insert(assessmentsTable).
		Rows(PgAssessment{
			Status:     string(domain.AssessmentStatusDraft),
			BLGUUserID: int64(userID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not create assessment in pg: %w", err)
	}

	a, err := p.AssessmentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assessment for user %d vanished after insert", userID)
	}

	return a, nil
}

func (p *PgSQL) AssessmentByID(ctx context.Context, id domain.AssessmentID) (*domain.Assessment, error) {
	return p.assessmentWhere(ctx, goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) AssessmentByUserID(ctx context.Context, userID domain.UserID) (*domain.Assessment, error) {
	return p.assessmentWhere(ctx, goqu.I("blgu_user_id").Eq(int64(userID)))
}

func (p *PgSQL) assessmentWhere(ctx context.Context, exp goqu.Expression) (*domain.Assessment, error) {
	var row PgAssessment
	found, err := p.Builder.From(assessmentsTable).Where(exp).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch assessment: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateAssessment sets only the provided fields and always refreshes updated_at.
func (p *PgSQL) UpdateAssessment(ctx context.Context,
	id domain.AssessmentID,
	updates storage.AssessmentUpdates) (*domain.Assessment, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.ReworkCount != nil {
		rec["rework_count"] = *updates.ReworkCount
	}
	if updates.SubmittedAt != nil {
		rec["submitted_at"] = updates.SubmittedAt.UTC()
	}
	if updates.ValidatedAt != nil {
		rec["validated_at"] = updates.ValidatedAt.UTC()
	}
	if updates.FinalComplianceStatus != nil {
		rec["final_compliance_status"] = string(*updates.FinalComplianceStatus)
	}
	if updates.AreaResults != nil {
		b, err := json.Marshal(updates.AreaResults)
		if err != nil {
			return nil, fmt.Errorf("could not marshal area results: %w", err)
		}
		rec["area_results"] = b
	}
	if updates.AIRecommendations != nil {
		b, err := json.Marshal(updates.AIRecommendations)
		if err != nil {
			return nil, fmt.Errorf("could not marshal ai recommendations: %w", err)
		}
		rec["ai_recommendations"] = b
	}

	where := []goqu.Expression{goqu.I("id").Eq(int64(id))}
	if updates.WhereStatus != nil {
		where = append(where, goqu.I("status").In(statusStrings(updates.WhereStatus)))
	}
	if updates.WhereReworkCount != nil {
		where = append(where, goqu.I("rework_count").Eq(*updates.WhereReworkCount))
	}

	var row PgAssessment
	found, err := p.Builder.Update(assessmentsTable).
		Set(rec).
		Where(where...).
		Returning(&PgAssessment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update assessment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// listAssessmentsQuery joins assessments with their BLGU user and barangay.
func (p *PgSQL) listAssessmentsQuery(statuses []domain.AssessmentStatus) *goqu.SelectDataset {
	cols := append(assessmentColumns("a"),
		goqu.T("b").Col("name").As("barangay_name"),
		goqu.T("u").Col("name").As("blgu_user_name"),
	)

	ds := p.Builder.From(goqu.T(assessmentsTable).As("a")).
		Select(cols...).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.T("u").Col("id").Eq(goqu.T("a").Col("blgu_user_id")))).
		LeftJoin(goqu.T(barangaysTable).As("b"), goqu.On(goqu.T("b").Col("id").Eq(goqu.T("u").Col("barangay_id")))).
		Order(goqu.T("a").Col("updated_at").Desc(), goqu.T("a").Col("id").Desc())
	if len(statuses) > 0 {
		ds = ds.Where(goqu.T("a").Col("status").In(statusStrings(statuses)))
	}

	return ds
}

func (p *PgSQL) ListAssessments(ctx context.Context,
	statuses ...domain.AssessmentStatus) ([]storage.AssessmentListItem, error) {
	return p.scanAssessmentList(ctx, p.listAssessmentsQuery(statuses))
}

// AssessorQueue lists assessments having at least one response on an
// indicator of the given area.
func (p *PgSQL) AssessorQueue(ctx context.Context,
	areaID domain.GovernanceAreaID,
	statuses ...domain.AssessmentStatus) ([]storage.AssessmentListItem, error) {
	inArea := p.Builder.From(goqu.T(responsesTable).As("r")).
		Select(goqu.L("1")).
		Join(goqu.T(indicatorsTable).As("i"), goqu.On(goqu.T("i").Col("id").Eq(goqu.T("r").Col("indicator_id")))).
		Where(
			goqu.T("r").Col("assessment_id").Eq(goqu.T("a").Col("id")),
			goqu.T("i").Col("governance_area_id").Eq(int64(areaID)),
		)

	ds := p.listAssessmentsQuery(statuses).Where(goqu.L("EXISTS ?", inArea))

	return p.scanAssessmentList(ctx, ds)
}

func (p *PgSQL) scanAssessmentList(ctx context.Context, ds *goqu.SelectDataset) ([]storage.AssessmentListItem, error) {
	var rows []PgAssessmentListItem
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list assessments: %w", err)
	}

	return mapRows(rows, func(r *PgAssessmentListItem) (storage.AssessmentListItem, error) {
		a, err := r.PgAssessment.ToDomain()
		if err != nil {
			return storage.AssessmentListItem{}, err
		}

		return storage.AssessmentListItem{
			Assessment:   *a,
			BarangayName: r.BarangayName.String,
			BLGUUserName: r.BLGUUserName.String,
		}, nil
	})
}

func (p *PgSQL) AssessmentStats(ctx context.Context) (storage.AssessmentStats, error) {
	var byStatus []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := p.Builder.From(assessmentsTable).
		Select(goqu.I("status"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &byStatus); err != nil {
		return storage.AssessmentStats{}, fmt.Errorf("could not count assessments by status: %w", err)
	}

	var responses struct {
		Total          int64 `db:"total"`
		Completed      int64 `db:"completed"`
		RequiresRework int64 `db:"requires_rework"`
	}
	if _, err := p.Builder.From(responsesTable).
		Select(
			goqu.COUNT("*").As("total"),
			goqu.L("COUNT(*) FILTER (WHERE is_completed)").As("completed"),
			goqu.L("COUNT(*) FILTER (WHERE requires_rework)").As("requires_rework"),
		).
		Executor().ScanStructContext(ctx, &responses); err != nil {
		return storage.AssessmentStats{}, fmt.Errorf("could not count responses: %w", err)
	}

	stats := storage.AssessmentStats{
		AssessmentsByStatus:      make(map[domain.AssessmentStatus]int64, len(byStatus)),
		TotalResponses:           responses.Total,
		CompletedResponses:       responses.Completed,
		ResponsesRequiringRework: responses.RequiresRework,
	}
	for _, s := range byStatus {
		stats.AssessmentsByStatus[domain.AssessmentStatus(s.Status)] = s.Count
		stats.TotalAssessments += s.Count
	}

	return stats, nil
}

func statusStrings(statuses []domain.AssessmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}

	return out
}
