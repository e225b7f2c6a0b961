package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"complymeter/internal/model"
	"complymeter/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssessmentRepo struct {
	assessments map[string]*model.Assessment
}

func (s *stubAssessmentRepo) Create(ctx context.Context, a *model.Assessment) (string, error) {
	return "", nil
}

func (s *stubAssessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	return s.assessments[id], nil
}

func (s *stubAssessmentRepo) ListByOrganization(ctx context.Context, org string) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for _, a := range s.assessments {
		if a.OrganizationName == org {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAssessmentRepo) Update(ctx context.Context, a *model.Assessment) error {
	return nil
}

func testRouter(t *testing.T, repo *stubAssessmentRepo) (http.Handler, *service.AuthService) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "password123")
	t.Setenv("JWT_SECRET", "router-test-secret")

	authSvc := service.NewAuthService()
	questionnaireSvc := service.NewQuestionnaireService(nil)
	assessmentSvc := service.NewAssessmentService(repo, questionnaireSvc, nil)
	narrativeSvc := service.NewNarrativeService(nil, nil)

	router := NewRouter(&Container{
		AuthService:          authSvc,
		QuestionnaireService: questionnaireSvc,
		AssessmentService:    assessmentSvc,
		NarrativeService:     narrativeSvc,
	})
	return router, authSvc
}

func adminToken(t *testing.T, authSvc *service.AuthService) string {
	login, err := authSvc.Login("admin", "password123")
	require.NoError(t, err)
	return login.Token
}

func respondentToken(t *testing.T, authSvc *service.AuthService, assessmentID, org string) string {
	token, err := authSvc.GenerateRespondentToken(assessmentID, org)
	require.NoError(t, err)
	return token
}

func doRequest(router http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func seedRepo() *stubAssessmentRepo {
	return &stubAssessmentRepo{assessments: map[string]*model.Assessment{
		"a1": {ID: "a1", OrganizationName: "Acme", Status: model.AssessmentInProgress},
		"a2": {ID: "a2", OrganizationName: "Globex", Status: model.AssessmentInProgress},
	}}
}

func TestAdminCanViewAnyAssessment(t *testing.T) {
	router, authSvc := testRouter(t, seedRepo())
	token := adminToken(t, authSvc)

	rr := doRequest(router, "GET", "/v1/assessments/a1", token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Acme"`)

	rr = doRequest(router, "GET", "/v1/assessments/a2", token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRespondentViewsOnlyOwnAssessment(t *testing.T) {
	router, authSvc := testRouter(t, seedRepo())
	token := respondentToken(t, authSvc, "a1", "Acme")

	rr := doRequest(router, "GET", "/v1/assessments/a1", token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(router, "GET", "/v1/assessments/a2", token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAssessmentRequiresToken(t *testing.T) {
	router, _ := testRouter(t, seedRepo())

	rr := doRequest(router, "GET", "/v1/assessments/a1", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doRequest(router, "GET", "/v1/assessments/a1", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminListsAssessmentsByOrganization(t *testing.T) {
	router, authSvc := testRouter(t, seedRepo())
	token := adminToken(t, authSvc)

	rr := doRequest(router, "GET", "/v1/assessments?organization=Acme", token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"a1"`)
	assert.NotContains(t, rr.Body.String(), `"a2"`)

	// Admins carry no organization scope of their own
	rr = doRequest(router, "GET", "/v1/assessments", token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRespondentListsOwnOrganization(t *testing.T) {
	router, authSvc := testRouter(t, seedRepo())
	token := respondentToken(t, authSvc, "a1", "Acme")

	rr := doRequest(router, "GET", "/v1/assessments", token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"a1"`)
	assert.NotContains(t, rr.Body.String(), `"a2"`)
}

func TestRespondentTokenRejectedOnAdminRoutes(t *testing.T) {
	router, authSvc := testRouter(t, seedRepo())
	token := respondentToken(t, authSvc, "a1", "Acme")

	rr := doRequest(router, "GET", "/v1/questionnaires", token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminTokenRejectedOnRespondentRoutes(t *testing.T) {
	router, authSvc := testRouter(t, seedRepo())
	token := adminToken(t, authSvc)

	rr := doRequest(router, "POST", "/v1/assessments/a1/complete", token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
