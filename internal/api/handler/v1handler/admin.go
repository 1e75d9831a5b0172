package v1handler

import (
	"net/http"

	"vantage/pkg/domain"
	"vantage/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerAdmin(r chi.Router) {
	r.Use(h.requireRole(domain.RoleSystemAdmin, msgAdminRequired))

	r.Get("/assessments/stats", h.assessmentStats)
	r.Get("/assessments/validated", h.validatedAssessments)
	r.Post("/assessments/{id}/classify", h.classify)
	r.Get("/assessments/{id}/insights", h.insights)
}

func (h *Handler) assessmentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Assessments.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, stats)
}

var knownStatuses = map[domain.AssessmentStatus]struct{}{ //nolint: gochecknoglobals
	domain.AssessmentStatusDraft:              {},
	domain.AssessmentStatusSubmittedForReview: {},
	domain.AssessmentStatusValidated:          {},
	domain.AssessmentStatusNeedsRework:        {},
}

func (h *Handler) validatedAssessments(w http.ResponseWriter, r *http.Request) {
	status := domain.AssessmentStatusValidated
	if v := r.URL.Query().Get("status"); v != "" {
		status = domain.AssessmentStatus(v)
		if _, ok := knownStatuses[status]; !ok {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "Invalid status: %s", v))

			return
		}
	}

	items, err := h.deps.Assessments.List(r.Context(), status)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, items)
}

// ClassifyResponse is the body of the admin classification trigger.
type ClassifyResponse struct {
	AssessmentID          domain.AssessmentID     `json:"assessment_id"`
	FinalComplianceStatus domain.ComplianceStatus `json:"final_compliance_status"`
	AreaResults           domain.AreaResults      `json:"area_results"`
	InsightsQueued        bool                    `json:"insights_queued"`
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Intelligence.Classify(r.Context(), domain.AssessmentID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	queued, err := h.deps.Intelligence.EnqueueInsights(r.Context(), domain.AssessmentID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, ClassifyResponse{
		AssessmentID:          res.AssessmentID,
		FinalComplianceStatus: res.FinalComplianceStatus,
		AreaResults:           res.AreaResults,
		InsightsQueued:        queued,
	})
}

// InsightsPending is returned while insights are being generated.
type InsightsPending struct {
	AssessmentID domain.AssessmentID `json:"assessment_id"`
	Status       string              `json:"status"`
	Message      string              `json:"message"`
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	cached, err := h.deps.Intelligence.CachedInsights(r.Context(), domain.AssessmentID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if cached != nil {
		writeJSON(r.Context(), w, http.StatusOK, cached)

		return
	}

	if _, err := h.deps.Intelligence.EnqueueInsights(r.Context(), domain.AssessmentID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusAccepted, InsightsPending{
		AssessmentID: domain.AssessmentID(id),
		Status:       "queued",
		Message:      "Insight generation has been queued. Check back shortly.",
	})
}
