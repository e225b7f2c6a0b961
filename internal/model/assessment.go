package model

import "time"

// Assessment status values
const (
	AssessmentInProgress = "in_progress"
	AssessmentComplete   = "complete"
)

// Assessment is one organization's run through a questionnaire. While in
// progress the working response set lives in Redis; on completion the
// responses and the computed result are frozen onto this record.
type Assessment struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	OrganizationName string            `json:"organizationName" bson:"organizationName"`
	Regulation       string            `json:"regulation" bson:"regulation"`
	Industry         string            `json:"industry" bson:"industry"`
	QuestionnaireID  string            `json:"questionnaireId" bson:"questionnaireId"`
	Status           string            `json:"status" bson:"status"`
	Responses        map[string]string `json:"responses,omitempty" bson:"responses,omitempty"`
	Result           *ScoreResult      `json:"result,omitempty" bson:"result,omitempty"`
	CreatedAt        time.Time         `json:"createdAt" bson:"createdAt"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// NarrativeReport is a generated human-readable report for a completed
// assessment. Source records whether it came from the LLM or the template
// fallback.
type NarrativeReport struct {
	AssessmentID string    `json:"assessmentId" bson:"assessmentId"`
	Source       string    `json:"source" bson:"source"` // "ai" or "template"
	Content      string    `json:"content" bson:"content"`
	GeneratedAt  time.Time `json:"generatedAt" bson:"generatedAt"`
}
