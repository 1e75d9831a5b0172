package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"vantage/internal/api/handler/v1handler"
	"vantage/internal/assessment"
	mockassessment "vantage/internal/assessment/mock"
	"vantage/internal/assessor"
	mockassessor "vantage/internal/assessor/mock"
	"vantage/internal/auth"
	mockauth "vantage/internal/auth/mock"
	"vantage/internal/intelligence"
	mockintelligence "vantage/internal/intelligence/mock"
	mocklookups "vantage/internal/lookups/mock"
	"vantage/internal/users"
	mockusers "vantage/internal/users/mock"
	"vantage/pkg/domain"
	"vantage/pkg/objectstore"
	"vantage/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	auth         *mockauth.MockService
	users        *mockusers.MockService
	lookups      *mocklookups.MockService
	assessments  *mockassessment.MockService
	assessor     *mockassessor.MockService
	intelligence *mockintelligence.MockService
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newRouter(t *testing.T, database, cache v1handler.Pinger) (http.Handler, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mocks{
		auth:         mockauth.NewMockService(ctrl),
		users:        mockusers.NewMockService(ctrl),
		lookups:      mocklookups.NewMockService(ctrl),
		assessments:  mockassessment.NewMockService(ctrl),
		assessor:     mockassessor.NewMockService(ctrl),
		intelligence: mockintelligence.NewMockService(ctrl),
	}
	h := v1handler.New(v1handler.Deps{
		Auth:         m.auth,
		Users:        m.users,
		Lookups:      m.lookups,
		Assessments:  m.assessments,
		Assessor:     m.assessor,
		Intelligence: m.intelligence,
		Database:     database,
		Cache:        cache,
	}, v1handler.Options{TokenTTL: time.Hour})

	r := chi.NewRouter()
	r.Route("/api/v1", h.Register)

	return r, m
}

func signedIn(m mocks, user domain.User) {
	m.auth.EXPECT().Authenticate(gomock.Any(), "tok").
		Return(&auth.Principal{User: user, Claims: auth.Claims{UserID: user.ID, JTI: "jti-1"}}, nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Code, body.Message
}

var (
	blgu         = domain.User{ID: 1, Role: domain.RoleBLGUUser, IsActive: true}
	assessorUser = domain.User{ID: 2, Role: domain.RoleAreaAssessor, IsActive: true}
	admin        = domain.User{ID: 3, Role: domain.RoleSystemAdmin, IsActive: true}
)

func TestRoutes_MissingToken(t *testing.T) {
	h, _ := newRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	code, msg := decodeError(t, rec)
	require.Equal(t, "UNAUTHORIZED", code)
	require.Equal(t, "Not authenticated", msg)
}

func TestRoutes_CookieToken(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, blgu)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"role":"BLGU_USER"`)
}

func TestRoutes_InvalidToken(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	m.auth.EXPECT().Authenticate(gomock.Any(), "tok").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "Could not validate credentials"))

	rec := do(t, h, http.MethodGet, "/api/v1/lookups/barangays", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	_, msg := decodeError(t, rec)
	require.Equal(t, "Could not validate credentials", msg)
}

func TestLogin_JSON(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	m.auth.EXPECT().Login(gomock.Any(), "a@b.c", "secret").
		Return(&auth.Token{AccessToken: "jwt", TokenType: "bearer", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"access_token":"jwt","token_type":"bearer"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, v1handler.CookieName, cookies[0].Name)
	require.Equal(t, "jwt", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.Positive(t, cookies[0].MaxAge)
}

func TestLogin_Form(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	m.auth.EXPECT().Login(gomock.Any(), "a@b.c", "secret").
		Return(&auth.Token{AccessToken: "jwt", TokenType: "bearer"}, nil)

	form := url.Values{"username": {"a@b.c"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	m.auth.EXPECT().Login(gomock.Any(), "a@b.c", "nope").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "Incorrect email or password"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"nope"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	_, msg := decodeError(t, rec)
	require.Equal(t, "Incorrect email or password", msg)
}

func TestLogin_MissingFields(t *testing.T) {
	h, _ := newRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, blgu)
	m.auth.EXPECT().Logout(gomock.Any(), auth.Claims{UserID: blgu.ID, JTI: "jti-1"}).Return(nil)

	rec := do(t, h, http.MethodPost, "/api/v1/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Successfully logged out"}`, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Negative(t, cookies[0].MaxAge)
}

func TestChangePassword_Incorrect(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, blgu)
	m.auth.EXPECT().ChangePassword(gomock.Any(), blgu.ID, "old", "new").
		Return(serrors.With(serrors.ErrBadRequest, "Incorrect password"))

	rec := do(t, h, http.MethodPost, "/api/v1/auth/change-password", `{"current_password":"old","new_password":"new"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	cases := []struct {
		name   string
		user   domain.User
		method string
		path   string
		msg    string
	}{
		{"blgu on admin", blgu, http.MethodGet, "/api/v1/admin/assessments/stats",
			"Not enough permissions. Admin access required."},
		{"assessor on users", assessorUser, http.MethodGet, "/api/v1/users",
			"Not enough permissions. Admin access required."},
		{"admin on blgu", admin, http.MethodGet, "/api/v1/assessments/dashboard",
			"Not enough permissions. BLGU User access required."},
		{"blgu on assessor", blgu, http.MethodGet, "/api/v1/assessor/queue",
			"Not enough permissions. Area Assessor access required."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRouter(t, nil, nil)
			signedIn(m, tc.user)

			rec := do(t, h, tc.method, tc.path, "")
			require.Equal(t, http.StatusForbidden, rec.Code)
			code, msg := decodeError(t, rec)
			require.Equal(t, "FORBIDDEN", code)
			require.Equal(t, tc.msg, msg)
		})
	}
}

func TestRoleGuards_SuperuserIsAdmin(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, domain.User{ID: 9, Role: domain.RoleBLGUUser, IsSuperuser: true, IsActive: true})
	m.users.EXPECT().Stats(gomock.Any()).Return(&users.Stats{TotalUsers: 4}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/users/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsers_Params(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)
	role := domain.RoleAreaAssessor
	active := true
	m.users.EXPECT().List(gomock.Any(), users.ListParams{
		Search: "ana", Role: &role, IsActive: &active, Page: 2, Size: 50,
	}).Return(&users.Page{Page: 2, Size: 50}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/users?search=ana&role=AREA_ASSESSOR&is_active=true&page=2&size=50", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsers_SizeTooLarge(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)

	rec := do(t, h, http.MethodGet, "/api/v1/users?size=101", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)
	area := domain.GovernanceAreaID(2)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p users.CreateParams) (*domain.User, error) {
			require.Equal(t, domain.RoleAreaAssessor, p.Role)
			require.Equal(t, &area, p.GovernanceAreaID)

			return &domain.User{ID: 10, Email: p.Email, Role: p.Role, GovernanceAreaID: p.GovernanceAreaID}, nil
		})

	rec := do(t, h, http.MethodPost, "/api/v1/users",
		`{"email":"x@y.z","name":"X","password":"pw","role":"AREA_ASSESSOR","governance_area_id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeactivateUser_InvalidID(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)

	rec := do(t, h, http.MethodDelete, "/api/v1/users/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateResponse(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, blgu)
	m.assessments.EXPECT().UpdateResponse(gomock.Any(), blgu, domain.ResponseID(5), assessment.UpdateResponseParams{
		ResponseData: domain.ResponseData{"compliance": "yes"},
	}).Return(nil, serrors.With(serrors.ErrBadRequest, "Assessment cannot be modified in its current status"))

	rec := do(t, h, http.MethodPut, "/api/v1/assessments/responses/5", `{"response_data":{"compliance":"yes"}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	_, msg := decodeError(t, rec)
	require.Equal(t, "Assessment cannot be modified in its current status", msg)
}

func TestSubmit_InvalidIsNotAnError(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, blgu)
	m.assessments.EXPECT().Submit(gomock.Any(), blgu).Return(&assessment.SubmitResult{
		IsValid: false,
		Errors: []assessment.SubmissionError{{
			IndicatorID: 1, IndicatorName: "1.1", Error: "YES answer requires Means of Verification (MOV)",
		}},
		Warnings: []assessment.SubmissionError{},
	}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/assessments/submit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"is_valid":false`)
}

func TestUploadURL(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, blgu)
	expires := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.assessments.EXPECT().UploadURL(gomock.Any(), blgu, domain.ResponseID(5), assessment.UploadParams{
		Filename: "ord.pdf", ContentType: "application/pdf", Size: 1024, Section: "minutes",
	}).Return(&assessment.Upload{
		Request: objectstore.PresignedRequest{
			URL:       "https://s3/put",
			Method:    http.MethodPut,
			Header:    http.Header{"Content-Type": {"application/pdf"}},
			ExpiresAt: expires,
		},
		Filename:    "abc-ord.pdf",
		StoragePath: "assessments/1/responses/5/minutes/abc-ord.pdf",
	}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/assessments/responses/5/movs/upload-url",
		`{"filename":"ord.pdf","content_type":"application/pdf","size":1024,"section":"minutes"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1handler.UploadURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "https://s3/put", res.UploadURL)
	require.Equal(t, "application/pdf", res.Headers["Content-Type"])
	require.Equal(t, "assessments/1/responses/5/minutes/abc-ord.pdf", res.StoragePath)
	require.True(t, expires.Equal(res.ExpiresAt))
}

func TestDeleteMOV_StorageFailure(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, blgu)
	m.assessments.EXPECT().DeleteMOV(gomock.Any(), blgu, domain.MOVID(8)).
		Return(serrors.Wrap(serrors.ErrInternal, errors.New("s3 down"), "Failed to delete MOV file from storage"))

	rec := do(t, h, http.MethodDelete, "/api/v1/assessments/movs/8", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestValidateResponse(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, assessorUser)
	m.assessor.EXPECT().ValidateResponse(gomock.Any(), assessorUser, domain.ResponseID(4), assessor.ValidateParams{
		ValidationStatus: domain.ValidationStatusPass,
		PublicComment:    "ok",
	}).Return(&assessor.ValidationResult{
		Success: true, AssessmentResponseID: 4, ValidationStatus: domain.ValidationStatusPass,
	}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/assessor/assessment-responses/4/validate",
		`{"validation_status":"Pass","public_comment":"ok"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)
}

func TestFinalize(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, assessorUser)
	m.assessor.EXPECT().Finalize(gomock.Any(), assessorUser, domain.AssessmentID(3)).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Cannot finalize a draft assessment"))

	rec := do(t, h, http.MethodPost, "/api/v1/assessor/assessments/3/finalize", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminInsights_Queued(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)
	m.intelligence.EXPECT().CachedInsights(gomock.Any(), domain.AssessmentID(6)).Return(nil, nil)
	m.intelligence.EXPECT().EnqueueInsights(gomock.Any(), domain.AssessmentID(6)).Return(true, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/admin/assessments/6/insights", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"queued"`)
}

func TestAdminInsights_Cached(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)
	m.intelligence.EXPECT().CachedInsights(gomock.Any(), domain.AssessmentID(6)).
		Return(&domain.Insights{Summary: "good"}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/admin/assessments/6/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"summary":"good"`)
}

func TestAdminClassify(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)
	m.intelligence.EXPECT().Classify(gomock.Any(), domain.AssessmentID(6)).Return(&intelligence.Result{
		AssessmentID:          6,
		FinalComplianceStatus: domain.ComplianceStatusPassed,
		AreaResults:           domain.AreaResults{"Financial Administration and Sustainability": domain.ComplianceStatusPassed},
	}, nil)
	m.intelligence.EXPECT().EnqueueInsights(gomock.Any(), domain.AssessmentID(6)).Return(false, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/admin/assessments/6/classify", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1handler.ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, domain.ComplianceStatusPassed, res.FinalComplianceStatus)
	require.False(t, res.InsightsQueued)
}

func TestAdminList_InvalidStatus(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)

	rec := do(t, h, http.MethodGet, "/api/v1/admin/assessments/validated?status=Unknown", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminList_DefaultsToValidated(t *testing.T) {
	h, m := newRouter(t, nil, nil)
	signedIn(m, admin)
	m.assessments.EXPECT().List(gomock.Any(), domain.AssessmentStatusValidated).Return([]assessment.ListItem{}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/admin/assessments/validated", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	h, _ := newRouter(t, ok, ok)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1handler.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "healthy", res.Status)
	require.Equal(t, "healthy", res.Database)

	h, _ = newRouter(t, down, ok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "unhealthy", res.Status)
	require.Equal(t, "unhealthy", res.Database)
	require.Equal(t, "healthy", res.Cache)
}
