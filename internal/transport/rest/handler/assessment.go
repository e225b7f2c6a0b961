package handler

import (
	"complymeter/internal/service"
	"complymeter/internal/transport/rest/middleware"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

// AssessmentHandler handles assessment lifecycle endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	authSvc       *service.AuthService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, authSvc *service.AuthService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		authSvc:       authSvc,
	}
}

// StartAssessmentRequest is the request body for starting an assessment
type StartAssessmentRequest struct {
	OrganizationName string `json:"organizationName"`
	Regulation       string `json:"regulation"`
	Industry         string `json:"industry"`
}

// SaveResponsesRequest carries a page of responses keyed "sN_qM"
type SaveResponsesRequest struct {
	Responses map[string]string `json:"responses"`
}

// Start handles POST /v1/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrganizationName == "" || req.Regulation == "" {
		writeError(w, http.StatusBadRequest, "organizationName and regulation are required")
		return
	}

	assessment, err := h.assessmentSvc.Start(r.Context(), req.OrganizationName, req.Regulation, req.Industry)
	if err != nil {
		if errors.Is(err, service.ErrQuestionnaireNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.authSvc.GenerateRespondentToken(assessment.ID, assessment.OrganizationName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"assessment": assessment,
		"token":      token,
	})
}

// requireOwnAssessment checks the path id against the token's assessment
// scope. Admin tokens are not scoped to a single assessment and pass the
// check for any id.
func requireOwnAssessment(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["assessmentId"]
	if middleware.GetAdminID(r.Context()) != "" {
		return id, true
	}
	if middleware.GetAssessmentID(r.Context()) != id {
		writeError(w, http.StatusForbidden, "token not valid for this assessment")
		return "", false
	}
	return id, true
}

// SaveResponses handles PUT /v1/assessments/{assessmentId}/responses
func (h *AssessmentHandler) SaveResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwnAssessment(w, r)
	if !ok {
		return
	}

	var req SaveResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.assessmentSvc.SaveResponses(r.Context(), id, req.Responses); err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Complete handles POST /v1/assessments/{assessmentId}/complete
func (h *AssessmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwnAssessment(w, r)
	if !ok {
		return
	}

	assessment, err := h.assessmentSvc.Complete(r.Context(), id)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Get handles GET /v1/assessments/{assessmentId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwnAssessment(w, r)
	if !ok {
		return
	}

	assessment, err := h.assessmentSvc.Get(r.Context(), id)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// List handles GET /v1/assessments. Respondents see their own organization's
// assessments; admins pass ?organization= to pick one.
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	org := middleware.GetOrganization(r.Context())
	if middleware.GetAdminID(r.Context()) != "" {
		org = r.URL.Query().Get("organization")
		if org == "" {
			writeError(w, http.StatusBadRequest, "organization query parameter is required")
			return
		}
	}

	assessments, err := h.assessmentSvc.ListByOrganization(r.Context(), org)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": assessments})
}

// Result handles GET /v1/assessments/{assessmentId}/result
func (h *AssessmentHandler) Result(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwnAssessment(w, r)
	if !ok {
		return
	}

	result, err := h.assessmentSvc.Result(r.Context(), id)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Recommendations handles GET /v1/assessments/{assessmentId}/recommendations
func (h *AssessmentHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := requireOwnAssessment(w, r)
	if !ok {
		return
	}

	view, err := h.assessmentSvc.Recommendations(r.Context(), id)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func writeAssessmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound), errors.Is(err, service.ErrQuestionnaireNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAssessmentNotDone), errors.Is(err, service.ErrAlreadyComplete):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
