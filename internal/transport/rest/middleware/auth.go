package middleware

import (
	"complymeter/internal/service"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	AdminIDKey      contextKey = "adminId"
	AssessmentIDKey contextKey = "assessmentId"
	OrganizationKey contextKey = "organization"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAdmin validates an admin JWT from the Authorization header
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateAdminToken(token)
		if err != nil || claims.AdminID == "" {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRespondent validates an assessment-scoped respondent JWT
func (m *AuthMiddleware) RequireRespondent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateRespondentToken(token)
		if err != nil || claims.AssessmentID == "" {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, AssessmentIDKey, claims.AssessmentID)
		ctx = context.WithValue(ctx, OrganizationKey, claims.OrganizationName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminOrRespondent accepts either token type. Both token kinds are
// signed with the same secret, so the claim content decides which one this
// is: admin claims take precedence, and handlers tell the two apart via
// GetAdminID.
func (m *AuthMiddleware) RequireAdminOrRespondent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		if claims, err := m.authSvc.ValidateAdminToken(token); err == nil && claims.AdminID != "" {
			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		claims, err := m.authSvc.ValidateRespondentToken(token)
		if err != nil || claims.AssessmentID == "" {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, AssessmentIDKey, claims.AssessmentID)
		ctx = context.WithValue(ctx, OrganizationKey, claims.OrganizationName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID extracts the admin ID from context
func GetAdminID(ctx context.Context) string {
	if v := ctx.Value(AdminIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetAssessmentID extracts the token's assessment ID from context
func GetAssessmentID(ctx context.Context) string {
	if v := ctx.Value(AssessmentIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetOrganization extracts the organization name from context
func GetOrganization(ctx context.Context) string {
	if v := ctx.Value(OrganizationKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
