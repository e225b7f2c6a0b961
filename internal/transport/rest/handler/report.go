package handler

import (
	"complymeter/internal/service"
	"net/http"
)

// ReportHandler handles narrative report endpoints
type ReportHandler struct {
	assessmentSvc *service.AssessmentService
	narrativeSvc  *service.NarrativeService
}

// NewReportHandler creates a new report handler
func NewReportHandler(assessmentSvc *service.AssessmentService, narrativeSvc *service.NarrativeService) *ReportHandler {
	return &ReportHandler{
		assessmentSvc: assessmentSvc,
		narrativeSvc:  narrativeSvc,
	}
}

// Get handles GET /v1/assessments/{assessmentId}/report
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, false)
}

// Regenerate handles POST /v1/assessments/{assessmentId}/report
func (h *ReportHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, true)
}

func (h *ReportHandler) generate(w http.ResponseWriter, r *http.Request, force bool) {
	id, ok := requireOwnAssessment(w, r)
	if !ok {
		return
	}

	assessment, err := h.assessmentSvc.Get(r.Context(), id)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	report, err := h.narrativeSvc.GenerateReport(r.Context(), assessment, force)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
