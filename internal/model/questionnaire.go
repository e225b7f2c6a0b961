package model

import "time"

// Question is a single multiple-choice item within a section. Its identity is
// its index within the section; there is no separate id field.
type Question struct {
	Text    string   `json:"text" bson:"text"`
	Options []string `json:"options" bson:"options"`
	// Recommendations maps a selected option string to the remediation text
	// surfaced when that option indicates a compliance gap. Options without
	// an entry produce no recommendation.
	Recommendations map[string]string `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
}

// Section is a named, weighted group of questions. Name is the canonical key
// for scores and recommendations and must be unique within a questionnaire.
type Section struct {
	Name      string     `json:"name" bson:"name"`
	Weight    float64    `json:"weight" bson:"weight"`
	Questions []Question `json:"questions" bson:"questions"`
}

// Questionnaire is a persistent assessment template for one
// regulation/industry combination.
type Questionnaire struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Regulation string    `json:"regulation" bson:"regulation"`
	Industry   string    `json:"industry" bson:"industry"`
	Title      string    `json:"title" bson:"title"`
	Sections   []Section `json:"sections" bson:"sections"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// QuestionCount returns the total number of questions across all sections.
func (q *Questionnaire) QuestionCount() int {
	total := 0
	for _, s := range q.Sections {
		total += len(s.Questions)
	}
	return total
}
