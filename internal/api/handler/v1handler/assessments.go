package v1handler

import (
	"net/http"
	"time"

	"vantage/internal/assessment"
	"vantage/pkg/domain"
	"vantage/pkg/objectstore"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerAssessments(r chi.Router) {
	r.Use(h.requireRole(domain.RoleBLGUUser, "Not enough permissions. BLGU User access required."))

	r.Get("/dashboard", h.dashboard)
	r.Get("/my-assessment", h.myAssessment)
	r.Post("/submit", h.submit)

	r.Post("/responses", h.createResponse)
	r.Get("/responses/{id}", h.getResponse)
	r.Put("/responses/{id}", h.updateResponse)
	r.Post("/responses/{id}/movs", h.createMOV)
	r.Post("/responses/{id}/movs/upload-url", h.uploadURL)

	r.Delete("/movs/{id}", h.deleteMOV)
	r.Get("/movs/{id}/download-url", h.downloadURL)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.deps.Assessments.Dashboard(r.Context(), currentUser(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, d)
}

func (h *Handler) myAssessment(w http.ResponseWriter, r *http.Request) {
	v, err := h.deps.Assessments.MyAssessment(r.Context(), currentUser(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, v)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Assessments.Submit(r.Context(), currentUser(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

type createResponseRequest struct {
	AssessmentID domain.AssessmentID `json:"assessment_id"`
	IndicatorID  domain.IndicatorID  `json:"indicator_id"`
	ResponseData domain.ResponseData `json:"response_data"`
}

func (h *Handler) createResponse(w http.ResponseWriter, r *http.Request) {
	var req createResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Assessments.CreateResponse(r.Context(), currentUser(r), assessment.CreateResponseParams{
		AssessmentID: req.AssessmentID,
		IndicatorID:  req.IndicatorID,
		ResponseData: req.ResponseData,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

func (h *Handler) getResponse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Assessments.GetResponse(r.Context(), currentUser(r), domain.ResponseID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

type updateResponseRequest struct {
	ResponseData domain.ResponseData `json:"response_data"`
}

func (h *Handler) updateResponse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req updateResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Assessments.UpdateResponse(r.Context(), currentUser(r), domain.ResponseID(id),
		assessment.UpdateResponseParams{ResponseData: req.ResponseData})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Section     string `json:"section"`
}

// UploadURLResponse tells the client where to PUT a MOV file and which path
// to register afterwards.
type UploadURLResponse struct {
	UploadURL   string            `json:"upload_url"`
	Method      string            `json:"method"`
	Headers     map[string]string `json:"headers"`
	ExpiresAt   time.Time         `json:"expires_at"`
	Filename    string            `json:"filename"`
	StoragePath string            `json:"storage_path"`
}

func flattenHeader(req objectstore.PresignedRequest) map[string]string {
	headers := make(map[string]string, len(req.Header))
	for k := range req.Header {
		headers[k] = req.Header.Get(k)
	}

	return headers
}

func (h *Handler) uploadURL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	up, err := h.deps.Assessments.UploadURL(r.Context(), currentUser(r), domain.ResponseID(id), assessment.UploadParams{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Size:        req.Size,
		Section:     req.Section,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, UploadURLResponse{
		UploadURL:   up.Request.URL,
		Method:      up.Request.Method,
		Headers:     flattenHeader(up.Request),
		ExpiresAt:   up.Request.ExpiresAt,
		Filename:    up.Filename,
		StoragePath: up.StoragePath,
	})
}

type movRequest struct {
	ResponseID       domain.ResponseID `json:"response_id"`
	Filename         string            `json:"filename"`
	OriginalFilename string            `json:"original_filename"`
	FileSize         int64             `json:"file_size"`
	ContentType      string            `json:"content_type"`
	StoragePath      string            `json:"storage_path"`
}

func (m movRequest) params() assessment.MOVParams {
	return assessment.MOVParams{
		ResponseID:       m.ResponseID,
		Filename:         m.Filename,
		OriginalFilename: m.OriginalFilename,
		FileSize:         m.FileSize,
		ContentType:      m.ContentType,
		StoragePath:      m.StoragePath,
	}
}

func (h *Handler) createMOV(w http.ResponseWriter, r *http.Request) {
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

	mov, err := h.deps.Assessments.CreateMOV(r.Context(), currentUser(r), domain.ResponseID(id), req.params())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, mov)
}

func (h *Handler) deleteMOV(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Assessments.DeleteMOV(r.Context(), currentUser(r), domain.MOVID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeMessage(w, http.StatusOK, "MOV deleted successfully")
}

// DownloadURLResponse carries a presigned MOV download link.
type DownloadURLResponse struct {
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (h *Handler) downloadURL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	req, err := h.deps.Assessments.DownloadURL(r.Context(), currentUser(r), domain.MOVID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DownloadURLResponse{DownloadURL: req.URL, ExpiresAt: req.ExpiresAt})
}
