package rest

import (
	"complymeter/internal/service"
	"complymeter/internal/transport/rest/handler"
	"complymeter/internal/transport/rest/middleware"
	"net/http"
	"os"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService          *service.AuthService
	QuestionnaireService *service.QuestionnaireService
	AssessmentService    *service.AssessmentService
	NarrativeService     *service.NarrativeService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	questionnaireHandler := handler.NewQuestionnaireHandler(c.QuestionnaireService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.AuthService)
	reportHandler := handler.NewReportHandler(c.AssessmentService, c.NarrativeService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/questionnaires", questionnaireHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/questionnaires", questionnaireHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/questionnaires/{questionnaireId}", questionnaireHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/questionnaires/{questionnaireId}", questionnaireHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/questionnaires/{questionnaireId}", questionnaireHandler.Delete).Methods("DELETE", "OPTIONS")

	// Routes open to admins and assessment-scoped respondents alike
	sharedRoutes := v1.NewRoute().Subrouter()
	sharedRoutes.Use(authMW.RequireAdminOrRespondent)

	sharedRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	sharedRoutes.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Get).Methods("GET", "OPTIONS")

	// Respondent routes (require assessment-scoped auth)
	respondentRoutes := v1.NewRoute().Subrouter()
	respondentRoutes.Use(authMW.RequireRespondent)

	respondentRoutes.HandleFunc("/assessments/{assessmentId}/responses", assessmentHandler.SaveResponses).Methods("PUT", "OPTIONS")
	respondentRoutes.HandleFunc("/assessments/{assessmentId}/complete", assessmentHandler.Complete).Methods("POST", "OPTIONS")
	respondentRoutes.HandleFunc("/assessments/{assessmentId}/result", assessmentHandler.Result).Methods("GET", "OPTIONS")
	respondentRoutes.HandleFunc("/assessments/{assessmentId}/recommendations", assessmentHandler.Recommendations).Methods("GET", "OPTIONS")
	respondentRoutes.HandleFunc("/assessments/{assessmentId}/report", reportHandler.Get).Methods("GET", "OPTIONS")
	respondentRoutes.HandleFunc("/assessments/{assessmentId}/report", reportHandler.Regenerate).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
