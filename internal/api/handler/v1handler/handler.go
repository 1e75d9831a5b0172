// Package v1handler implements the /api/v1 REST surface on top of the domain
// services.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vantage/internal/assessment"
	"vantage/internal/assessor"
	"vantage/internal/auth"
	"vantage/internal/config"
	"vantage/internal/intelligence"
	"vantage/internal/lookups"
	"vantage/internal/users"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Pinger checks connectivity with a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services behind the v1 routes.
type Deps struct {
	Auth         auth.Service
	Users        users.Service
	Lookups      lookups.Service
	Assessments  assessment.Service
	Assessor     assessor.Service
	Intelligence intelligence.Service

	Database Pinger
	Cache    Pinger
}

// Options configures cookie handling.
type Options struct {
	// SecureCookies marks the auth-token cookie as Secure.
	SecureCookies bool
	// TokenTTL bounds the auth-token cookie lifetime.
	TokenTTL time.Duration
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecureCookies: cfg.HTTP.SecureCookies,
		TokenTTL:      cfg.JWT.AccessTokenTTL,
	}
}

type Handler struct {
	deps Deps
	opts Options
	now  func() time.Time
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{deps: deps, opts: opts, now: time.Now}
}

// Register mounts every v1 route onto r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/system/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/logout", h.logout)
			r.Post("/refresh", h.refresh)
			r.Post("/change-password", h.changePassword)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/lookups/governance-areas", h.governanceAreas)
		r.Get("/lookups/barangays", h.barangays)

		r.Route("/users", h.registerUsers)
		r.Route("/assessments", h.registerAssessments)
		r.Route("/assessor", h.registerAssessor)
		r.Route("/admin", h.registerAdmin)
	})
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes the response as {"code": ..., "message": ...}.
func (e ErrorResponse) Encode(enc *jx.Encoder) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("code", func(enc *jx.Encoder) { enc.Str(e.Code) })
		enc.Field("message", func(enc *jx.Encoder) { enc.Str(e.Message) })
	})
}

// Error pairs an ErrorResponse with its HTTP status.
type Error struct {
	StatusCode int
	Response   ErrorResponse
}

var statusByKind = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",
}

// NewError maps err to its HTTP representation. Errors without a known kind,
// and internal errors, are logged and hidden behind a generic message.
func (h Handler) NewError(ctx context.Context, err error) *Error {
	kind := serrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &Error{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = defaultMessages[kind]
	}

	return &Error{StatusCode: status, Response: ErrorResponse{Code: kind.Error(), Message: msg}}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := h.NewError(r.Context(), err)
	if e.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	var enc jx.Encoder
	e.Response.Encode(&enc)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_, _ = w.Write(enc.Bytes())
}

// writeMessage writes {"message": msg}.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	var enc jx.Encoder
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("message", func(enc *jx.Encoder) { enc.Str(msg) })
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(enc.Bytes())
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// decodeJSON reads the request body into v. Unknown fields are ignored.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return serrors.With(serrors.ErrBadRequest, "request body is required")
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return serrors.With(serrors.ErrBadRequest, "invalid value for field '%s'", typeErr.Field)
		case errors.As(err, &syntaxErr):
			return serrors.With(serrors.ErrBadRequest, "malformed JSON body")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
		}
	}

	return nil
}
