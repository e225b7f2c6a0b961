package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the admin login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse contains the admin token
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// AdminClaims are JWT claims for the admin token
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// RespondentClaims are JWT claims for an assessment-scoped respondent token
type RespondentClaims struct {
	AssessmentID     string `json:"assessmentId"`
	OrganizationName string `json:"organizationName"`
	jwt.RegisteredClaims
}
