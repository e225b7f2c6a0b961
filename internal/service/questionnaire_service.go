package service

import (
	"complymeter/internal/model"
	"complymeter/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
)

// industryAliases maps the industry names users type to the canonical
// industry a questionnaire is stored under.
var industryAliases = map[string]string{
	"general":             "banking and finance",
	"banking":             "banking and finance",
	"banking and finance": "banking and finance",
	"e-commerce":          "e-commerce",
	"ecommerce":           "e-commerce",
}

// QuestionnaireService validates and looks up questionnaire definitions
type QuestionnaireService struct {
	repo repository.QuestionnaireRepo
}

// NewQuestionnaireService creates a new questionnaire service
func NewQuestionnaireService(repo repository.QuestionnaireRepo) *QuestionnaireService {
	return &QuestionnaireService{repo: repo}
}

// CanonicalIndustry resolves an industry name through the alias table.
// Unknown industries pass through lowercased so new questionnaires don't
// need an alias entry.
func CanonicalIndustry(industry string) string {
	key := strings.ToLower(strings.TrimSpace(industry))
	if canonical, ok := industryAliases[key]; ok {
		return canonical
	}
	return key
}

// Validate checks the structural contract a questionnaire must hold before it
// is stored: at least one section, unique section names, positive weights,
// and at least one option per question. The scoring core fails soft on all of
// these, but admitting them at the source just produces silently meaningless
// scores.
func Validate(q *model.Questionnaire) error {
	if q == nil || len(q.Sections) == 0 {
		return errors.New("questionnaire must have at least one section")
	}
	seen := map[string]bool{}
	for i, section := range q.Sections {
		if strings.TrimSpace(section.Name) == "" {
			return fmt.Errorf("section %d has an empty name", i)
		}
		if seen[section.Name] {
			return fmt.Errorf("duplicate section name %q", section.Name)
		}
		seen[section.Name] = true
		if section.Weight <= 0 {
			return fmt.Errorf("section %q has non-positive weight %v", section.Name, section.Weight)
		}
		for j, question := range section.Questions {
			if len(question.Options) == 0 {
				return fmt.Errorf("section %q question %d has no options", section.Name, j)
			}
		}
	}
	return nil
}

// Create validates and stores a questionnaire
func (s *QuestionnaireService) Create(ctx context.Context, q *model.Questionnaire) (string, error) {
	if err := Validate(q); err != nil {
		return "", err
	}
	q.Industry = CanonicalIndustry(q.Industry)
	return s.repo.Create(ctx, q)
}

// Update validates and replaces a questionnaire
func (s *QuestionnaireService) Update(ctx context.Context, q *model.Questionnaire) error {
	if err := Validate(q); err != nil {
		return err
	}
	q.Industry = CanonicalIndustry(q.Industry)
	return s.repo.Update(ctx, q)
}

// GetByID fetches a questionnaire by id
func (s *QuestionnaireService) GetByID(ctx context.Context, id string) (*model.Questionnaire, error) {
	return s.repo.GetByID(ctx, id)
}

// Lookup fetches the questionnaire for a regulation/industry pair, resolving
// industry aliases first.
func (s *QuestionnaireService) Lookup(ctx context.Context, regulation, industry string) (*model.Questionnaire, error) {
	q, err := s.repo.GetByRegulationIndustry(ctx, regulation, CanonicalIndustry(industry))
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionnaireNotFound
	}
	return q, nil
}

// List returns questionnaires, optionally filtered by regulation
func (s *QuestionnaireService) List(ctx context.Context, regulation string) ([]*model.Questionnaire, error) {
	return s.repo.List(ctx, regulation)
}

// Delete removes a questionnaire
func (s *QuestionnaireService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
