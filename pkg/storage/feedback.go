package storage

import (
	"context"

	"vantage/pkg/domain"
)

// FeedbackStorage persists assessor feedback comments.
type FeedbackStorage interface {
	// StoreFeedbackComments inserts comments and returns the stored rows.
	StoreFeedbackComments(ctx context.Context, comments ...domain.FeedbackComment) ([]domain.FeedbackComment, error)
	// FeedbackByResponses lists comments on the given responses, newest first.
	// Internal notes are only included when includeInternal is set.
	FeedbackByResponses(ctx context.Context,
		includeInternal bool,
		responseIDs ...domain.ResponseID) ([]domain.FeedbackComment, error)
}
