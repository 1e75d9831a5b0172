package v1handler

import (
	"context"
	"net/http"
	"time"

	"vantage/pkg/logger"

	"go.uber.org/zap"
)

func (h *Handler) governanceAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.deps.Lookups.GovernanceAreas(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, areas)
}

func (h *Handler) barangays(w http.ResponseWriter, r *http.Request) {
	barangays, err := h.deps.Lookups.Barangays(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, barangays)
}

// Health is the body of GET /system/health.
type Health struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	Timestamp time.Time `json:"timestamp"`
}

const pingTimeout = 2 * time.Second

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ping := func(p Pinger) string {
		if p == nil {
			return "disabled"
		}
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			logger.Warn(ctx, "health check failed", zap.Error(err))

			return "unhealthy"
		}

		return "healthy"
	}

	res := Health{
		Status:    "healthy",
		Database:  ping(h.deps.Database),
		Cache:     ping(h.deps.Cache),
		Timestamp: h.now().UTC(),
	}
	status := http.StatusOK
	if res.Database == "unhealthy" || res.Cache == "unhealthy" {
		res.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	writeJSON(r.Context(), w, status, res)
}
