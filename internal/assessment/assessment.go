// Package assessment implements the BLGU side of the SGLGB assessment
// workflow: filling responses, attaching means of verification and
// submitting for review. It also serves the admin reports.
package assessment

import (
	"context"
	"fmt"
	"time"

	"vantage/internal/config"
	"vantage/pkg/domain"
	"vantage/pkg/objectstore"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"
)

// Options configures MOV upload limits.
type Options struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxFileSize:       cfg.ObjectStorage.MaxFileSize,
		AllowedExtensions: cfg.ObjectStorage.AllowedExtensions,
	}
}

type service struct {
	storage storage.Storage
	store   objectstore.Store
	options Options
	now     func() time.Time
}

var _ Service = (*service)(nil)

// responseData gathers an assessment's responses with their MOVs and visible
// feedback.
type responseData struct {
	responses []domain.AssessmentResponse
	movs      map[domain.ResponseID][]domain.MOV
	feedback  map[domain.ResponseID][]domain.FeedbackComment
	comments  []domain.FeedbackComment
	// commented holds every response with any comment, internal notes included.
	commented map[domain.ResponseID]struct{}
}

func (s service) loadResponses(ctx context.Context, assessmentID domain.AssessmentID) (*responseData, error) {
	responses, err := s.storage.ResponsesByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get responses: %w", err)
	}

	data := &responseData{
		responses: responses,
		movs:      make(map[domain.ResponseID][]domain.MOV),
		feedback:  make(map[domain.ResponseID][]domain.FeedbackComment),
		comments:  []domain.FeedbackComment{},
		commented: make(map[domain.ResponseID]struct{}),
	}
	if len(responses) == 0 {
		return data, nil
	}

	ids := make([]domain.ResponseID, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}

	movs, err := s.storage.MOVsByResponses(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get movs: %w", err)
	}
	for _, m := range movs {
		data.movs[m.ResponseID] = append(data.movs[m.ResponseID], m)
	}

	comments, err := s.storage.FeedbackByResponses(ctx, true, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get feedback: %w", err)
	}
	for _, c := range comments {
		data.commented[c.ResponseID] = struct{}{}
		if c.IsInternalNote {
			continue
		}
		data.feedback[c.ResponseID] = append(data.feedback[c.ResponseID], c)
		data.comments = append(data.comments, c)
	}

	return data, nil
}

func (d *responseData) view(r domain.AssessmentResponse) *ResponseView {
	v := &ResponseView{
		AssessmentResponse: r,
		MOVs:               d.movs[r.ID],
		FeedbackComments:   d.feedback[r.ID],
	}
	if v.MOVs == nil {
		v.MOVs = []domain.MOV{}
	}
	if v.FeedbackComments == nil {
		v.FeedbackComments = []domain.FeedbackComment{}
	}

	return v
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}

func (s service) Dashboard(ctx context.Context, user domain.User) (*Dashboard, error) {
	barangayName := "Unknown"
	if user.BarangayID != nil {
		b, err := s.storage.BarangayByID(ctx, *user.BarangayID)
		if err != nil {
			return nil, fmt.Errorf("could not get barangay: %w", err)
		}
		if b != nil {
			barangayName = b.Name
		}
	}

	a, err := s.storage.EnsureAssessment(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not ensure assessment: %w", err)
	}

	areas, err := s.storage.GovernanceAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get governance areas: %w", err)
	}
	indicators, err := s.storage.Indicators(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get indicators: %w", err)
	}
	data, err := s.loadResponses(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	byIndicator := make(map[domain.IndicatorID]domain.AssessmentResponse, len(data.responses))
	metrics := ProgressMetrics{TotalIndicators: len(indicators)}
	for _, r := range data.responses {
		byIndicator[r.IndicatorID] = r
		if r.IsCompleted {
			metrics.CompletedIndicators++
		}
		if r.RequiresRework {
			metrics.ResponsesRequiringRework++
		}
		if _, ok := data.commented[r.ID]; ok {
			metrics.ResponsesWithFeedback++
		}
		if len(data.movs[r.ID]) > 0 {
			metrics.ResponsesWithMOVs++
		}
	}
	metrics.CompletionPercentage = percentage(metrics.CompletedIndicators, metrics.TotalIndicators)
	metrics.Progress = Progress{
		Current:    metrics.CompletedIndicators,
		Total:      metrics.TotalIndicators,
		Percentage: metrics.CompletionPercentage,
	}

	byArea := make(map[domain.GovernanceAreaID][]domain.Indicator)
	for _, i := range indicators {
		byArea[i.GovernanceAreaID] = append(byArea[i.GovernanceAreaID], i)
	}

	areaProgress := make([]AreaProgress, 0, len(areas))
	for _, area := range areas {
		if !hasTopLevel(byArea[area.ID]) {
			continue
		}

		p := AreaProgress{
			ID:              area.ID,
			Name:            area.Name,
			AreaType:        area.AreaType,
			TotalIndicators: len(byArea[area.ID]),
			Indicators:      make([]IndicatorProgress, 0, len(byArea[area.ID])),
		}
		for _, i := range byArea[area.ID] {
			r, ok := byIndicator[i.ID]
			ip := IndicatorProgress{ID: i.ID, Name: i.Name, HasResponse: ok}
			if ok {
				ip.IsCompleted = r.IsCompleted
				ip.RequiresRework = r.RequiresRework
			}
			if ip.IsCompleted {
				p.CompletedIndicators++
			}
			if ip.RequiresRework {
				p.RequiresReworkCount++
			}
			p.Indicators = append(p.Indicators, ip)
		}
		p.CompletionPercentage = percentage(p.CompletedIndicators, p.TotalIndicators)
		areaProgress = append(areaProgress, p)
	}

	year := s.now().Year()

	return &Dashboard{
		User: DashboardUser{
			ID:           user.ID,
			Name:         user.Name,
			BarangayName: barangayName,
			Role:         user.Role.String(),
		},
		Assessment: DashboardAssessment{
			ID:          a.ID,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
			SubmittedAt: a.SubmittedAt,
		},
		Years:                  Years{Current: year, Performance: year, Assessment: year},
		ProgressMetrics:        metrics,
		GovernanceAreaProgress: areaProgress,
		Feedback:               data.comments,
	}, nil
}

// hasTopLevel reports whether indicators holds at least one indicator
// without a parent. Areas whose indicators are all children are containers.
func hasTopLevel(indicators []domain.Indicator) bool {
	for _, i := range indicators {
		if i.ParentID == nil {
			return true
		}
	}

	return false
}

func (s service) MyAssessment(ctx context.Context, user domain.User) (*View, error) {
	a, err := s.storage.EnsureAssessment(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not ensure assessment: %w", err)
	}

	areas, err := s.storage.GovernanceAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get governance areas: %w", err)
	}
	indicators, err := s.storage.Indicators(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get indicators: %w", err)
	}
	data, err := s.loadResponses(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	byIndicator := make(map[domain.IndicatorID]domain.AssessmentResponse, len(data.responses))
	for _, r := range data.responses {
		byIndicator[r.IndicatorID] = r
	}
	byArea := make(map[domain.GovernanceAreaID][]domain.Indicator)
	for _, i := range indicators {
		byArea[i.GovernanceAreaID] = append(byArea[i.GovernanceAreaID], i)
	}

	view := &View{Assessment: *a, GovernanceAreas: make([]AreaView, 0, len(areas))}
	for _, area := range areas {
		av := AreaView{GovernanceArea: area, Indicators: make([]IndicatorView, 0, len(byArea[area.ID]))}
		for _, i := range byArea[area.ID] {
			iv := IndicatorView{Indicator: i}
			if r, ok := byIndicator[i.ID]; ok {
				iv.Response = data.view(r)
			}
			av.Indicators = append(av.Indicators, iv)
		}
		view.GovernanceAreas = append(view.GovernanceAreas, av)
	}

	return view, nil
}

// ownResponse loads a response and checks it belongs to the caller.
func (s service) ownResponse(ctx context.Context,
	user domain.User,
	id domain.ResponseID) (*domain.AssessmentResponse, *domain.Assessment, error) {
	r, err := s.storage.ResponseByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get response: %w", err)
	}
	if r == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "Assessment response not found")
	}

	a, err := s.storage.AssessmentByUserID(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if a == nil || a.ID != r.AssessmentID {
		return nil, nil, serrors.With(serrors.ErrForbidden, "Access denied. Response does not belong to your assessment")
	}

	return r, a, nil
}

func (s service) Stats(ctx context.Context) (*Stats, error) {
	st, err := s.storage.AssessmentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment stats: %w", err)
	}

	return &Stats{
		TotalAssessments:         st.TotalAssessments,
		AssessmentsByStatus:      st.AssessmentsByStatus,
		TotalResponses:           st.TotalResponses,
		CompletedResponses:       st.CompletedResponses,
		ResponsesRequiringRework: st.ResponsesRequiringRework,
	}, nil
}

func (s service) List(ctx context.Context, status domain.AssessmentStatus) ([]ListItem, error) {
	if status == "" {
		status = domain.AssessmentStatusValidated
	}

	rows, err := s.storage.ListAssessments(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("could not list assessments: %w", err)
	}

	items := make([]ListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ListItem{
			ID:                    r.Assessment.ID,
			Status:                r.Assessment.Status,
			FinalComplianceStatus: r.Assessment.FinalComplianceStatus,
			AreaResults:           r.Assessment.AreaResults,
			AIRecommendations:     r.Assessment.AIRecommendations,
			BarangayName:          r.BarangayName,
			BLGUUserName:          r.BLGUUserName,
			ValidatedAt:           r.Assessment.ValidatedAt,
			UpdatedAt:             r.Assessment.UpdatedAt,
		})
	}

	return items, nil
}

// New creates an assessment Service.
func New(storage storage.Storage, store objectstore.Store, options Options) Service {
	return &service{storage: storage, store: store, options: options, now: time.Now}
}
