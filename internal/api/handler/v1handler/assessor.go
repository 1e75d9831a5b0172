package v1handler

import (
	"net/http"

	"vantage/internal/assessor"
	"vantage/pkg/domain"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerAssessor(r chi.Router) {
	r.Use(h.requireRole(domain.RoleAreaAssessor, "Not enough permissions. Area Assessor access required."))

	r.Get("/queue", h.queue)
	r.Get("/assessments/{id}", h.assessmentDetails)
	r.Post("/assessments/{id}/rework", h.sendForRework)
	r.Post("/assessments/{id}/finalize", h.finalize)
	r.Post("/assessment-responses/{id}/validate", h.validateResponse)
	r.Post("/assessment-responses/{id}/movs", h.assessorMOV)
}

func (h *Handler) queue(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Assessor.Queue(r.Context(), currentUser(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, items)
}

func (h *Handler) assessmentDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	d, err := h.deps.Assessor.Details(r.Context(), currentUser(r), domain.AssessmentID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, d)
}

// workflow adapts an assessment-level assessor action to a handler.
func (h *Handler) workflow(action func(*http.Request, domain.AssessmentID) (*assessor.WorkflowResult, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		res, err := action(r, domain.AssessmentID(id))
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(r.Context(), w, http.StatusOK, res)
	}
}

func (h *Handler) sendForRework(w http.ResponseWriter, r *http.Request) {
	h.workflow(func(r *http.Request, id domain.AssessmentID) (*assessor.WorkflowResult, error) {
		return h.deps.Assessor.SendForRework(r.Context(), currentUser(r), id) //nolint: wrapcheck
	})(w, r)
}

func (h *Handler) finalize(w http.ResponseWriter, r *http.Request) {
	h.workflow(func(r *http.Request, id domain.AssessmentID) (*assessor.WorkflowResult, error) {
		return h.deps.Assessor.Finalize(r.Context(), currentUser(r), id) //nolint: wrapcheck
	})(w, r)
}

type validateRequest struct {
	ValidationStatus domain.ValidationStatus `json:"validation_status"`
	PublicComment    string                  `json:"public_comment"`
	InternalNote     string                  `json:"internal_note"`
}

func (h *Handler) validateResponse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Assessor.ValidateResponse(r.Context(), currentUser(r), domain.ResponseID(id), assessor.ValidateParams{
		ValidationStatus: req.ValidationStatus,
		PublicComment:    req.PublicComment,
		InternalNote:     req.InternalNote,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

func (h *Handler) assessorMOV(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req movRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Assessor.CreateMOV(r.Context(), currentUser(r), domain.ResponseID(id), req.params())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}
