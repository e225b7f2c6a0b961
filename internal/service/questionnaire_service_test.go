package service

import (
	"testing"

	"complymeter/internal/model"

	"github.com/stretchr/testify/assert"
)

func validQuestionnaire() *model.Questionnaire {
	return &model.Questionnaire{
		Regulation: "DPDP",
		Industry:   "banking and finance",
		Title:      "Test",
		Sections: []model.Section{
			{
				Name:   "Consent",
				Weight: 0.5,
				Questions: []model.Question{
					{Text: "Q1", Options: []string{"Yes", "No"}},
				},
			},
			{
				Name:   "Security",
				Weight: 0.5,
				Questions: []model.Question{
					{Text: "Q1", Options: []string{"Yes", "No"}},
				},
			},
		},
	}
}

func TestValidateAcceptsWellFormedQuestionnaire(t *testing.T) {
	assert.NoError(t, Validate(validQuestionnaire()))
}

func TestValidateRejectsEmptyQuestionnaire(t *testing.T) {
	assert.Error(t, Validate(nil))
	assert.Error(t, Validate(&model.Questionnaire{}))
}

func TestValidateRejectsDuplicateSectionNames(t *testing.T) {
	q := validQuestionnaire()
	q.Sections[1].Name = q.Sections[0].Name
	assert.ErrorContains(t, Validate(q), "duplicate section name")
}

func TestValidateRejectsEmptySectionName(t *testing.T) {
	q := validQuestionnaire()
	q.Sections[0].Name = "   "
	assert.ErrorContains(t, Validate(q), "empty name")
}

func TestValidateRejectsNonPositiveWeight(t *testing.T) {
	q := validQuestionnaire()
	q.Sections[0].Weight = 0
	assert.ErrorContains(t, Validate(q), "non-positive weight")

	q = validQuestionnaire()
	q.Sections[1].Weight = -0.5
	assert.ErrorContains(t, Validate(q), "non-positive weight")
}

func TestValidateRejectsQuestionWithoutOptions(t *testing.T) {
	q := validQuestionnaire()
	q.Sections[0].Questions[0].Options = nil
	assert.ErrorContains(t, Validate(q), "no options")
}

func TestCanonicalIndustry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"general", "banking and finance"},
		{"banking", "banking and finance"},
		{"Banking and Finance", "banking and finance"},
		{"ecommerce", "e-commerce"},
		{"E-Commerce", "e-commerce"},
		{"  Healthcare  ", "healthcare"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalIndustry(tt.input), "input %q", tt.input)
	}
}
