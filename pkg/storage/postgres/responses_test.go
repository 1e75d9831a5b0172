package postgres_test

import (
	"context"
	"testing"

	"vantage/pkg/domain"
	"vantage/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Responses(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	fx := seedFixture(t, pg, "blgu@vantage.local")

	a, err := pg.EnsureAssessment(ctx, fx.user.ID)
	require.NoError(t, err)

	r, err := pg.StoreResponse(ctx, domain.AssessmentResponse{
		AssessmentID: a.ID,
		IndicatorID:  fx.indicator.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, r.ResponseData)
	require.Empty(t, r.ResponseData)

	t.Run("store is idempotent per indicator", func(t *testing.T) {
		again, err := pg.StoreResponse(ctx, domain.AssessmentResponse{
			AssessmentID: a.ID,
			IndicatorID:  fx.indicator.ID,
			ResponseData: domain.ResponseData{"posted": "no"},
		})
		require.NoError(t, err)
		require.Equal(t, r.ID, again.ID)
		require.Empty(t, again.ResponseData)
	})

	t.Run("update", func(t *testing.T) {
		completed := true
		pass := domain.ValidationStatusPass
		u, err := pg.UpdateResponse(ctx, r.ID, storage.ResponseUpdates{
			ResponseData:     domain.ResponseData{"posted": "yes"},
			IsCompleted:      &completed,
			ValidationStatus: &pass,
		})
		require.NoError(t, err)
		require.Equal(t, "yes", u.ResponseData["posted"])
		require.True(t, u.IsCompleted)
		require.Equal(t, domain.ValidationStatusPass, *u.ValidationStatus)
	})

	t.Run("update only while assessment is editable", func(t *testing.T) {
		editable, err := pg.UpdateResponse(ctx, r.ID, storage.ResponseUpdates{
			ResponseData:          domain.ResponseData{"posted": "na"},
			WhereAssessmentStatus: domain.EditableStatuses(),
		})
		require.NoError(t, err)
		require.Equal(t, "na", editable.ResponseData["posted"])

		submitted := domain.AssessmentStatusSubmittedForReview
		_, err = pg.UpdateAssessment(ctx, a.ID, storage.AssessmentUpdates{Status: &submitted})
		require.NoError(t, err)

		locked, err := pg.UpdateResponse(ctx, r.ID, storage.ResponseUpdates{
			ResponseData:          domain.ResponseData{"posted": "no"},
			WhereAssessmentStatus: domain.EditableStatuses(),
		})
		require.NoError(t, err)
		require.Nil(t, locked)

		got, err := pg.ResponseByID(ctx, r.ID)
		require.NoError(t, err)
		require.Equal(t, "na", got.ResponseData["posted"])
	})

	t.Run("mark for rework", func(t *testing.T) {
		n, err := pg.MarkResponsesForRework(ctx, a.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		all, err := pg.ResponsesByAssessment(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.True(t, all[0].RequiresRework)
	})

	t.Run("movs", func(t *testing.T) {
		m, err := pg.StoreMOV(ctx, domain.MOV{
			Filename:         "abc-budget.pdf",
			OriginalFilename: "budget.pdf",
			FileSize:         2048,
			ContentType:      "application/pdf",
			StoragePath:      "assessments/1/responses/1/abc-budget.pdf",
			ResponseID:       r.ID,
		})
		require.NoError(t, err)
		require.Equal(t, domain.MOVStatusUploaded, m.Status)

		movs, err := pg.MOVsByResponses(ctx, r.ID)
		require.NoError(t, err)
		require.Len(t, movs, 1)

		deleted, err := pg.DeleteMOV(ctx, m.ID)
		require.NoError(t, err)
		require.Equal(t, m.ID, deleted.ID)

		again, err := pg.DeleteMOV(ctx, m.ID)
		require.NoError(t, err)
		require.Nil(t, again)
	})

	t.Run("feedback hides internal notes", func(t *testing.T) {
		assessor := fx.user.ID
		_, err := pg.StoreFeedbackComments(ctx,
			domain.FeedbackComment{
				Comment:     "Please attach the signed copy",
				CommentType: domain.CommentTypeValidation,
				ResponseID:  r.ID,
				AssessorID:  &assessor,
			},
			domain.FeedbackComment{
				Comment:        "Checked with the treasurer",
				CommentType:    domain.CommentTypeInternalNote,
				IsInternalNote: true,
				ResponseID:     r.ID,
			},
		)
		require.NoError(t, err)

		public, err := pg.FeedbackByResponses(ctx, false, r.ID)
		require.NoError(t, err)
		require.Len(t, public, 1)
		require.Equal(t, domain.CommentTypeValidation, public[0].CommentType)

		all, err := pg.FeedbackByResponses(ctx, true, r.ID)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})
}
