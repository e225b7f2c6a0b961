package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionCount(t *testing.T) {
	q := &Questionnaire{Sections: []Section{
		{Name: "A", Questions: make([]Question, 3)},
		{Name: "B", Questions: make([]Question, 2)},
	}}
	assert.Equal(t, 5, q.QuestionCount())
	assert.Equal(t, 0, (&Questionnaire{}).QuestionCount())
}
