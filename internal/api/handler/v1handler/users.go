package v1handler

import (
	"net/http"
	"strconv"

	"vantage/internal/users"
	"vantage/pkg/domain"
	"vantage/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

const maxPageSize = 100

func (h *Handler) registerUsers(r chi.Router) {
	r.Get("/me", h.getMe)
	r.Put("/me", h.updateMe)

	r.Group(func(r chi.Router) {
		r.Use(h.requireRole(domain.RoleSystemAdmin, msgAdminRequired))

		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/stats", h.userStats)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deactivateUser)
		r.Post("/{id}/activate", h.activateUser)
		r.Post("/{id}/reset-password", h.resetPassword)
	})
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, currentUser(r))
}

type profileRequest struct {
	Email       *string `json:"email"`
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.UpdateProfile(r.Context(), currentUser(r).ID, users.ProfileParams{
		Email:       req.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, u)
}

func parseListParams(r *http.Request) (users.ListParams, error) {
	q := r.URL.Query()
	params := users.ListParams{Search: q.Get("search"), Page: 1, Size: 10}

	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseUint(v, 10, 32)
		if err != nil || page < 1 {
			return params, serrors.With(serrors.ErrBadRequest, "page must be a positive integer")
		}
		params.Page = uint(page)
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.ParseUint(v, 10, 32)
		if err != nil || size < 1 || size > maxPageSize {
			return params, serrors.With(serrors.ErrBadRequest, "size must be between 1 and %d", maxPageSize)
		}
		params.Size = uint(size)
	}
	if v := q.Get("role"); v != "" {
		var role domain.UserRole
		if err := role.UnmarshalText([]byte(v)); err != nil {
			return params, serrors.With(serrors.ErrBadRequest, "invalid role")
		}
		params.Role = &role
	}
	if v := q.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return params, serrors.With(serrors.ErrBadRequest, "is_active must be a boolean")
		}
		params.IsActive = &active
	}

	return params, nil
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.deps.Users.List(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, page)
}

type createUserRequest struct {
	Email            string                   `json:"email"`
	Name             string                   `json:"name"`
	PhoneNumber      string                   `json:"phone_number"`
	Password         string                   `json:"password"`
	Role             domain.UserRole          `json:"role"`
	GovernanceAreaID *domain.GovernanceAreaID `json:"governance_area_id"`
	BarangayID       *domain.BarangayID       `json:"barangay_id"`
	IsActive         *bool                    `json:"is_active"`
	IsSuperuser      bool                     `json:"is_superuser"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	req := createUserRequest{Role: domain.RoleBLGUUser}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.Create(r.Context(), users.CreateParams{
		Email:            req.Email,
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		Password:         req.Password,
		Role:             req.Role,
		GovernanceAreaID: req.GovernanceAreaID,
		BarangayID:       req.BarangayID,
		IsActive:         req.IsActive,
		IsSuperuser:      req.IsSuperuser,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, u)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Users.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, stats)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.Get(r.Context(), domain.UserID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, u)
}

type updateUserRequest struct {
	Email            *string                  `json:"email"`
	Name             *string                  `json:"name"`
	PhoneNumber      *string                  `json:"phone_number"`
	Role             *domain.UserRole         `json:"role"`
	GovernanceAreaID *domain.GovernanceAreaID `json:"governance_area_id"`
	BarangayID       *domain.BarangayID       `json:"barangay_id"`
	IsActive         *bool                    `json:"is_active"`
	IsSuperuser      *bool                    `json:"is_superuser"`
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.Update(r.Context(), domain.UserID(id), users.UpdateParams{
		Email:            req.Email,
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		Role:             req.Role,
		GovernanceAreaID: req.GovernanceAreaID,
		BarangayID:       req.BarangayID,
		IsActive:         req.IsActive,
		IsSuperuser:      req.IsSuperuser,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, u)
}

func (h *Handler) setActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		u, err := h.deps.Users.SetActive(r.Context(), domain.UserID(id), active)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(r.Context(), w, http.StatusOK, u)
	}
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) { h.setActive(false)(w, r) }
func (h *Handler) activateUser(w http.ResponseWriter, r *http.Request)   { h.setActive(true)(w, r) }

type resetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.ResetPassword(r.Context(), domain.UserID(id), req.NewPassword)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, u)
}
