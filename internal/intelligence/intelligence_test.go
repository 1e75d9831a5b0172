package intelligence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vantage/internal/intelligence"
	"vantage/pkg/domain"
	"vantage/pkg/insights"
	mockinsights "vantage/pkg/insights/mock"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"
	mockstorage "vantage/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_Classify(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := intelligence.New(st, nil, intelligence.Options{})
	ctx := context.Background()

	areas, indicators := sglgb()
	pass := domain.ValidationStatusPass

	st.EXPECT().AssessmentByID(ctx, domain.AssessmentID(1)).Return(&domain.Assessment{ID: 1}, nil)
	st.EXPECT().GovernanceAreas(ctx).Return(areas, nil)
	st.EXPECT().Indicators(ctx).Return(indicators, nil)
	st.EXPECT().ResponsesByAssessment(ctx, domain.AssessmentID(1)).Return(
		responses(map[domain.IndicatorID]domain.ValidationStatus{1: pass, 2: pass, 3: pass, 6: pass}), nil)
	st.EXPECT().UpdateAssessment(ctx, domain.AssessmentID(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.AssessmentID, u storage.AssessmentUpdates) (*domain.Assessment, error) {
			require.Equal(t, domain.ComplianceStatusPassed, *u.FinalComplianceStatus)
			require.Equal(t, domain.ComplianceStatusPassed, u.AreaResults["Environmental Management"])

			return &domain.Assessment{ID: 1}, nil
		})

	res, err := svc.Classify(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.ComplianceStatusPassed, res.FinalComplianceStatus)
	require.Len(t, res.AreaResults, 6)
}

func TestService_Classify_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := intelligence.New(st, nil, intelligence.Options{})

	st.EXPECT().AssessmentByID(gomock.Any(), domain.AssessmentID(9)).Return(nil, nil)

	_, err := svc.Classify(context.Background(), 9)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Insights_NotValidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := intelligence.New(st, mockinsights.NewMockGenerator(ctrl), intelligence.Options{})

	st.EXPECT().AssessmentByID(gomock.Any(), domain.AssessmentID(2)).Return(
		&domain.Assessment{ID: 2, Status: domain.AssessmentStatusSubmittedForReview}, nil)

	_, err := svc.Insights(context.Background(), 2)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorContains(t, err, "is not validated")
}

func TestService_Insights_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := intelligence.New(st, mockinsights.NewMockGenerator(ctrl), intelligence.Options{})

	existing := &domain.Insights{Summary: "done"}
	st.EXPECT().AssessmentByID(gomock.Any(), domain.AssessmentID(3)).Return(
		&domain.Assessment{ID: 3, Status: domain.AssessmentStatusValidated, AIRecommendations: existing}, nil)

	got, err := svc.Insights(context.Background(), 3)
	require.NoError(t, err)
	require.Same(t, existing, got)
}

func TestService_Insights_Generates(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	gen := mockinsights.NewMockGenerator(ctrl)
	svc := intelligence.New(st, gen, intelligence.Options{})
	ctx := context.Background()

	validatedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	failed := domain.ComplianceStatusFailed
	barangayID := domain.BarangayID(4)

	st.EXPECT().AssessmentByID(ctx, domain.AssessmentID(5)).Return(&domain.Assessment{
		ID: 5, Status: domain.AssessmentStatusValidated, BLGUUserID: 7, ValidatedAt: &validatedAt,
		FinalComplianceStatus: &failed,
		AreaResults:           domain.AreaResults{"Disaster Preparedness": domain.ComplianceStatusFailed},
	}, nil)
	st.EXPECT().UserByID(ctx, domain.UserID(7)).Return(&domain.User{ID: 7, BarangayID: &barangayID}, nil)
	st.EXPECT().BarangayByID(ctx, barangayID).Return(&domain.Barangay{ID: 4, Name: "Poblacion"}, nil)
	st.EXPECT().ResponsesByAssessment(ctx, domain.AssessmentID(5)).Return([]domain.AssessmentResponse{
		{ID: 20, IndicatorID: 2, ValidationStatus: status(domain.ValidationStatusFail)},
		{ID: 21, IndicatorID: 1, ValidationStatus: status(domain.ValidationStatusPass)},
	}, nil)
	st.EXPECT().GovernanceAreas(ctx).Return([]domain.GovernanceArea{{ID: 2, Name: "Disaster Preparedness"}}, nil)
	st.EXPECT().Indicators(ctx).Return([]domain.Indicator{
		{ID: 2, Name: "BDRRMC organized", GovernanceAreaID: 2},
	}, nil)
	st.EXPECT().FeedbackByResponses(ctx, false, domain.ResponseID(20)).Return([]domain.FeedbackComment{
		{ResponseID: 20, Comment: "Missing EO"},
	}, nil)

	out := &domain.Insights{Summary: "needs work", Recommendations: []string{"organize"}}
	gen.EXPECT().Generate(ctx, insights.Request{
		AssessmentID:          5,
		BarangayName:          "Poblacion",
		AssessmentYear:        2025,
		FinalComplianceStatus: domain.ComplianceStatusFailed,
		AreaResults:           domain.AreaResults{"Disaster Preparedness": domain.ComplianceStatusFailed},
		Findings: []insights.Finding{{
			Area:      "Disaster Preparedness",
			Indicator: "BDRRMC organized",
			Status:    domain.ValidationStatusFail,
			Feedback:  []string{"Missing EO"},
		}},
	}).Return(out, nil)
	st.EXPECT().UpdateAssessment(ctx, domain.AssessmentID(5), storage.AssessmentUpdates{AIRecommendations: out}).
		Return(&domain.Assessment{ID: 5}, nil)

	got, err := svc.Insights(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, out, got)
}

func TestService_Insights_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	gen := mockinsights.NewMockGenerator(ctrl)
	svc := intelligence.New(st, gen, intelligence.Options{})

	st.EXPECT().AssessmentByID(gomock.Any(), domain.AssessmentID(6)).Return(
		&domain.Assessment{ID: 6, Status: domain.AssessmentStatusValidated, BLGUUserID: 1}, nil)
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(nil, nil)
	st.EXPECT().ResponsesByAssessment(gomock.Any(), domain.AssessmentID(6)).Return(nil, nil)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil,
		serrors.Wrap(serrors.ErrRateLimited, errors.New("429"), "quota"))

	_, err := svc.Insights(context.Background(), 6)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestService_Insights_NoGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := intelligence.New(st, nil, intelligence.Options{})

	st.EXPECT().AssessmentByID(gomock.Any(), domain.AssessmentID(6)).Return(
		&domain.Assessment{ID: 6, Status: domain.AssessmentStatusValidated}, nil)

	_, err := svc.Insights(context.Background(), 6)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_EnqueueInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := intelligence.New(st, nil, intelligence.Options{InsightMaxAttempts: 2})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AddJob(gomock.Any(), intelligence.InsightsJobArgs{AssessmentID: 8}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ river.JobArgs, opts *river.InsertOpts) (bool, error) {
				require.Equal(t, 2, opts.MaxAttempts)
				require.True(t, opts.UniqueOpts.ByArgs)

				return true, nil
			})
	})

	added, err := svc.EnqueueInsights(context.Background(), 8)
	require.NoError(t, err)
	require.True(t, added)
}
