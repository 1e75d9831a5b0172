package v1handler

import (
	"context"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"vantage/internal/auth"
	"vantage/pkg/domain"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CookieName is the cookie carrying the access token for browser clients.
const CookieName = "auth-token"

type ctxKey string

// PrincipalKey is the context key of the authenticated *auth.Principal.
const PrincipalKey ctxKey = "principal"

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) *auth.Principal {
	p, _ := ctx.Value(PrincipalKey).(*auth.Principal)

	return p
}

func currentUser(r *http.Request) domain.User {
	if p := PrincipalFromContext(r.Context()); p != nil {
		return p.User
	}

	return domain.User{}
}

// bearerToken extracts the token from the Authorization header, falling back
// to the auth-token cookie.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}

	return ""
}

const msgAdminRequired = "Not enough permissions. Admin access required."

// authenticate rejects requests without a valid token and stores the
// principal in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "Not authenticated"))

			return
		}

		principal, err := h.deps.Auth.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		ctx = logger.WithFields(ctx, zap.Int64("user_id", int64(principal.User.ID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole only lets callers with role through. Superusers pass the admin
// gate regardless of their role.
func (h *Handler) requireRole(role domain.UserRole, msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := currentUser(r)
			allowed := user.Role == role
			if role == domain.RoleSystemAdmin {
				allowed = user.IsAdmin()
			}
			if !allowed {
				h.writeError(w, r, serrors.With(serrors.ErrForbidden, "%s", msg))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly guards next with the same checks as the /admin routes.
func (h *Handler) AdminOnly(next http.Handler) http.Handler {
	return h.authenticate(h.requireRole(domain.RoleSystemAdmin, msgAdminRequired)(next))
}

func (h *Handler) setAuthCookie(w http.ResponseWriter, token *auth.Token) {
	maxAge := int(h.opts.TokenTTL.Seconds())
	if !token.ExpiresAt.IsZero() {
		maxAge = int(token.ExpiresAt.Sub(h.now()).Seconds())
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

const maxFormMemory = 32 << 10

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// parseLogin accepts a JSON body or an OAuth2 password form where the email is
// sent as username.
func parseLogin(r *http.Request) (loginRequest, error) {
	var req loginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		parse := r.ParseForm
		if mediaType == "multipart/form-data" {
			parse = func() error { return r.ParseMultipartForm(maxFormMemory) }
		}
		if err := parse(); err != nil {
			return req, serrors.Wrap(serrors.ErrBadRequest, err, "invalid form body")
		}
		req.Email = r.PostForm.Get("username")
		if req.Email == "" {
			req.Email = r.PostForm.Get("email")
		}
		req.Password = r.PostForm.Get("password")
	default:
		if err := decodeJSON(r, &req); err != nil {
			return req, err
		}
	}

	if req.Email == "" || req.Password == "" {
		return req, serrors.With(serrors.ErrBadRequest, "email and password are required")
	}

	return req, nil
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req, err := parseLogin(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	token, err := h.deps.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.setAuthCookie(w, token)
	writeJSON(r.Context(), w, http.StatusOK, token)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromContext(r.Context())
	if err := h.deps.Auth.Logout(r.Context(), p.Claims); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.clearAuthCookie(w)
	writeMessage(w, http.StatusOK, "Successfully logged out")
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	token, err := h.deps.Auth.Refresh(r.Context(), currentUser(r).ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.setAuthCookie(w, token)
	writeJSON(r.Context(), w, http.StatusOK, token)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Auth.ChangePassword(r.Context(), currentUser(r).ID, req.CurrentPassword, req.NewPassword); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeMessage(w, http.StatusOK, "Password updated successfully")
}

// pathID parses the {name} URL parameter as a positive integer id.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return id, nil
}
