package model

// ScoreResult is the full output of a scoring pass. Section scores are
// fractions in [0,1]; a nil entry means the section had no scorable responses
// (every question unanswered or not applicable) and is excluded from the
// overall score entirely. OverallScore is a percentage in [0,100].
//
// SectionOrder preserves the questionnaire's section order so that consumers
// can iterate deterministically and tie-breaks stay stable across runs.
type ScoreResult struct {
	SectionOrder          []string            `json:"sectionOrder" bson:"sectionOrder"`
	SectionScores         map[string]*float64 `json:"sectionScores" bson:"sectionScores"`
	OverallScore          float64             `json:"overallScore" bson:"overallScore"`
	ComplianceLevel       string              `json:"complianceLevel" bson:"complianceLevel"`
	HighRiskAreas         []string            `json:"highRiskAreas" bson:"highRiskAreas"`
	ImprovementPriorities []string            `json:"improvementPriorities" bson:"improvementPriorities"`
	Recommendations       map[string][]string `json:"recommendations" bson:"recommendations"`
}

// PriorityItem is one section's entry in a recommendation bucket. Score is a
// percentage to match what report surfaces display.
type PriorityItem struct {
	Section         string   `json:"section" bson:"section"`
	Score           float64  `json:"score" bson:"score"`
	Recommendations []string `json:"recommendations" bson:"recommendations"`
}

// PriorityGroups buckets sections by urgency using the same cut points as the
// compliance tiers. Within each bucket items are ordered most urgent first.
type PriorityGroups struct {
	High   []PriorityItem `json:"high" bson:"high"`
	Medium []PriorityItem `json:"medium" bson:"medium"`
	Low    []PriorityItem `json:"low" bson:"low"`
}

// ContextItem is the per-question audit trail behind a recommendation: the
// literal response recorded and the remediation text it matched. QuestionID
// is the 1-based position of the question within its section.
type ContextItem struct {
	QuestionID     int    `json:"questionId" bson:"questionId"`
	QuestionText   string `json:"questionText" bson:"questionText"`
	Response       string `json:"response" bson:"response"`
	Recommendation string `json:"recommendation" bson:"recommendation"`
}
