package handler

import (
	"complymeter/internal/model"
	"complymeter/internal/service"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// QuestionnaireHandler handles questionnaire admin endpoints
type QuestionnaireHandler struct {
	questionnaireSvc *service.QuestionnaireService
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(questionnaireSvc *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireSvc: questionnaireSvc}
}

// CreateQuestionnaireRequest is the request body for creating a questionnaire
type CreateQuestionnaireRequest struct {
	Regulation string          `json:"regulation"`
	Industry   string          `json:"industry"`
	Title      string          `json:"title"`
	Sections   []model.Section `json:"sections"`
}

// Create handles POST /v1/questionnaires
func (h *QuestionnaireHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := &model.Questionnaire{
		Regulation: req.Regulation,
		Industry:   req.Industry,
		Title:      req.Title,
		Sections:   req.Sections,
	}

	id, err := h.questionnaireSvc.Create(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"questionnaireId": id})
}

// Update handles PUT /v1/questionnaires/{questionnaireId}
func (h *QuestionnaireHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["questionnaireId"]

	var req CreateQuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := &model.Questionnaire{
		ID:         id,
		Regulation: req.Regulation,
		Industry:   req.Industry,
		Title:      req.Title,
		Sections:   req.Sections,
	}

	if err := h.questionnaireSvc.Update(r.Context(), q); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, q)
}

// Get handles GET /v1/questionnaires/{questionnaireId}
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["questionnaireId"]

	q, err := h.questionnaireSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if q == nil {
		writeError(w, http.StatusNotFound, "questionnaire not found")
		return
	}

	writeJSON(w, http.StatusOK, q)
}

// List handles GET /v1/questionnaires?regulation=DPDP
func (h *QuestionnaireHandler) List(w http.ResponseWriter, r *http.Request) {
	regulation := r.URL.Query().Get("regulation")

	questionnaires, err := h.questionnaireSvc.List(r.Context(), regulation)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questionnaires": questionnaires})
}

// Delete handles DELETE /v1/questionnaires/{questionnaireId}
func (h *QuestionnaireHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["questionnaireId"]

	if err := h.questionnaireSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
