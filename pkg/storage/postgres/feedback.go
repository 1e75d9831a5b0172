package postgres

import (
	"context"
	"fmt"

	"vantage/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	feedbackTable = "feedback_comments"
)

func (p *PgSQL) StoreFeedbackComments(ctx context.Context,
	comments ...domain.FeedbackComment) ([]domain.FeedbackComment, error) {
	if len(comments) == 0 {
		return nil, nil
	}

	rows := make([]PgFeedbackComment, len(comments))
	for i, c := range comments {
		rows[i].FromDomain(c)
	}

	var result []PgFeedbackComment
	if err := p.Builder.Insert(feedbackTable).
		Rows(rows).
		Returning(&PgFeedbackComment{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store feedback comments into pg: %w", err)
	}

	out := make([]domain.FeedbackComment, 0, len(result))
	for i := range result {
		out = append(out, result[i].ToDomain())
	}

	return out, nil
}

// FeedbackByResponses returns comments newest first. Internal notes are
// filtered out unless includeInternal is set.
func (p *PgSQL) FeedbackByResponses(ctx context.Context,
	includeInternal bool,
	responseIDs ...domain.ResponseID) ([]domain.FeedbackComment, error) {
	if len(responseIDs) == 0 {
		return nil, nil
	}

	w := []goqu.Expression{goqu.I("response_id").In(int64IDs(responseIDs))}
	if !includeInternal {
		w = append(w, goqu.I("is_internal_note").IsFalse())
	}

	var rows []PgFeedbackComment
	if err := p.Builder.From(feedbackTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list feedback comments: %w", err)
	}

	out := make([]domain.FeedbackComment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
