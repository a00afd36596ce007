package service

import (
	"context"

	"surveyforge/internal/builder"
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/logger"
	"surveyforge/internal/util"

	"go.uber.org/zap"
)

// GenerationService defines the interface for AI-assisted survey drafting
type GenerationService interface {
	GenerateSurvey(ctx context.Context, req *dto.GenerateSurveyRequest) (*dto.SurveyResponse, error)
}

type generationService struct {
	generator domain.SurveyGenerationService
	repo      domain.SurveyRepository
	newID     builder.IDGenerator
}

// NewGenerationService creates a new instance of generationService
func NewGenerationService(generator domain.SurveyGenerationService, repo domain.SurveyRepository) GenerationService {
	return &generationService{
		generator: generator,
		repo:      repo,
		newID:     util.NewULID,
	}
}

// GenerateSurvey turns a free-text topic into a persisted draft survey. The
// generator returns bare question skeletons; identifiers are assigned here so
// the result is editable like any hand-built survey.
func (s *generationService) GenerateSurvey(ctx context.Context, req *dto.GenerateSurveyRequest) (*dto.SurveyResponse, error) {
	generated, err := s.generator.GenerateSurvey(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(generated.Questions))
	for i := range generated.Questions {
		questions = append(questions, s.materialize(&generated.Questions[i]))
	}

	survey, err := s.repo.Create(ctx, domain.SurveyDraft{
		Title:       generated.Title,
		Description: generated.Description,
		Status:      domain.StatusDraft,
		Questions:   questions,
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generated survey draft",
		zap.String("survey_id", survey.ID),
		zap.Int("question_count", len(survey.Questions)))
	return dto.FromDomainSurvey(survey), nil
}

// materialize converts one generated skeleton into a full question: fresh
// identifiers everywhere, payload trimmed to the question's type and gaps
// backfilled with the builder defaults.
func (s *generationService) materialize(g *domain.GeneratedQuestion) domain.Question {
	q := domain.Question{
		ID:          s.newID(),
		Type:        g.Type,
		Title:       g.Title,
		Description: g.Description,
		IsRequired:  g.IsRequired,
		Scale:       g.Scale,
		Statements:  g.Statements,
		Choices:     g.Choices,
		Options:     s.assignEntryIDs(g.Options),
		Rows:        s.assignEntryIDs(g.Rows),
		Columns:     s.assignEntryIDs(g.Columns),
	}
	q.Normalize()

	// The model occasionally omits a payload or picks an off-scale rating;
	// fall back to the same defaults a hand-added question starts with.
	switch {
	case q.Type.HasOptions():
		if len(q.Options) == 0 {
			q.Options = []domain.Entry{{ID: s.newID(), Label: "Option 1"}}
		}
	case q.Type == domain.Rating:
		if q.Validate() != nil {
			q.Scale = 5
		}
	case q.Type == domain.Likert:
		if len(q.Statements) == 0 {
			q.Statements = []string{"Statement 1"}
		}
		if len(q.Choices) == 0 {
			q.Choices = []string{"Agree", "Disagree"}
		}
	case q.Type == domain.Matrix:
		if len(q.Rows) == 0 {
			q.Rows = []domain.Entry{{ID: s.newID(), Label: "Row 1"}}
		}
		if len(q.Columns) == 0 {
			q.Columns = []domain.Entry{{ID: s.newID(), Label: "Column 1"}}
		}
	}
	return q
}

func (s *generationService) assignEntryIDs(entries []domain.GeneratedEntry) []domain.Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Entry{ID: s.newID(), Label: e.Label})
	}
	return out
}
