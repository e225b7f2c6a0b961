package service

import (
	"complymeter/internal/cache"
	"complymeter/internal/model"
	"complymeter/internal/repository"
	"complymeter/internal/scoring"
	"context"
	"errors"
	"time"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAssessmentNotDone  = errors.New("assessment is not complete")
	ErrAlreadyComplete    = errors.New("assessment is already complete")
)

// AssessmentService orchestrates the assessment lifecycle: start, collect
// responses page by page, and on completion run the scoring pass and freeze
// the result. Scoring itself lives in the scoring package and is pure; this
// service only moves data in and out of storage around it.
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepo
	questionnaires *QuestionnaireService
	responses      cache.ResponseCache
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	assessmentRepo repository.AssessmentRepo,
	questionnaires *QuestionnaireService,
	responses cache.ResponseCache,
) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		questionnaires: questionnaires,
		responses:      responses,
	}
}

// Start creates an in-progress assessment for an organization against the
// questionnaire for the given regulation/industry.
func (s *AssessmentService) Start(ctx context.Context, org, regulation, industry string) (*model.Assessment, error) {
	q, err := s.questionnaires.Lookup(ctx, regulation, industry)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		OrganizationName: org,
		Regulation:       regulation,
		Industry:         CanonicalIndustry(industry),
		QuestionnaireID:  q.ID,
		Status:           model.AssessmentInProgress,
	}

	id, err := s.assessmentRepo.Create(ctx, assessment)
	if err != nil {
		return nil, err
	}
	assessment.ID = id
	return assessment, nil
}

// SaveResponses merges a page of string-keyed responses into the working set.
// Keys are the wire form "sN_qM"; malformed keys are tolerated here and
// dropped at scoring time.
func (s *AssessmentService) SaveResponses(ctx context.Context, assessmentID string, responses map[string]string) error {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return err
	}
	if assessment == nil {
		return ErrAssessmentNotFound
	}
	if assessment.Status == model.AssessmentComplete {
		return ErrAlreadyComplete
	}
	return s.responses.Save(ctx, assessmentID, responses)
}

// Complete snapshots the working response set, runs the scoring pass, and
// freezes responses and result onto the assessment record. The working set is
// deleted afterwards; the frozen snapshot is the source of truth from then on.
func (s *AssessmentService) Complete(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	if assessment.Status == model.AssessmentComplete {
		return assessment, nil
	}

	raw, err := s.responses.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	questionnaire, err := s.questionnaires.GetByID(ctx, assessment.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, ErrQuestionnaireNotFound
	}

	assessment.Responses = raw
	assessment.Result = scoring.ComputeScores(questionnaire, model.ResponseSetFromStrings(raw))
	assessment.Status = model.AssessmentComplete
	now := time.Now()
	assessment.CompletedAt = &now

	if err := s.assessmentRepo.Update(ctx, assessment); err != nil {
		return nil, err
	}

	// Working set is disposable once the snapshot is frozen
	_ = s.responses.Delete(ctx, assessmentID)

	return assessment, nil
}

// Get fetches an assessment by id
func (s *AssessmentService) Get(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// ListByOrganization returns every assessment recorded for an organization.
func (s *AssessmentService) ListByOrganization(ctx context.Context, org string) ([]*model.Assessment, error) {
	return s.assessmentRepo.ListByOrganization(ctx, org)
}

// Result returns the frozen score result for a completed assessment.
func (s *AssessmentService) Result(ctx context.Context, assessmentID string) (*model.ScoreResult, error) {
	assessment, err := s.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.Status != model.AssessmentComplete || assessment.Result == nil {
		return nil, ErrAssessmentNotDone
	}
	return assessment.Result, nil
}

// RecommendationView is the recommendations payload: priority buckets plus
// the per-question context audit trail.
type RecommendationView struct {
	Priorities model.PriorityGroups           `json:"priorities"`
	Context    map[string][]model.ContextItem `json:"context"`
	TopAreas   []string                       `json:"topAreas"`
}

// Recommendations builds the full recommendation view for a completed
// assessment from its frozen snapshot.
func (s *AssessmentService) Recommendations(ctx context.Context, assessmentID string) (*RecommendationView, error) {
	assessment, err := s.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.Status != model.AssessmentComplete || assessment.Result == nil {
		return nil, ErrAssessmentNotDone
	}

	questionnaire, err := s.questionnaires.GetByID(ctx, assessment.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, ErrQuestionnaireNotFound
	}

	return &RecommendationView{
		Priorities: scoring.OrganizeByPriority(assessment.Result),
		Context:    scoring.RecommendationContext(questionnaire, model.ResponseSetFromStrings(assessment.Responses)),
		TopAreas:   scoring.TopPriorities(assessment.Result, scoring.DefaultTopN),
	}, nil
}
