package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	cachekeys "surveyforge/internal/cache"
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService defines the interface for response aggregation
type AnalyticsService interface {
	GetSurveySummary(ctx context.Context, surveyID string) (*dto.AnalyticsSummaryResponse, error)
}

type analyticsService struct {
	surveyRepo   domain.SurveyRepository
	responseRepo domain.ResponseRepository
	cache        domain.Cache // may be nil when no cache is configured
	cacheTTL     time.Duration
}

// NewAnalyticsService creates a new instance of analyticsService
func NewAnalyticsService(surveyRepo domain.SurveyRepository, responseRepo domain.ResponseRepository, cache domain.Cache, cacheTTL time.Duration) AnalyticsService {
	return &analyticsService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// GetSurveySummary aggregates a survey's responses into per-question
// display-ready counts. Summaries are cached per survey and invalidated by
// the mutation paths, so a hot dashboard does not recompute on every poll.
func (s *analyticsService) GetSurveySummary(ctx context.Context, surveyID string) (*dto.AnalyticsSummaryResponse, error) {
	if cached := s.fromCache(ctx, surveyID); cached != nil {
		return cached, nil
	}

	var (
		survey    *domain.Survey
		responses []domain.SurveyResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		survey, err = s.surveyRepo.GetByID(gctx, surveyID)
		return err
	})
	g.Go(func() error {
		var err error
		responses, err = s.responseRepo.List(gctx, surveyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to load analytics inputs", err)
	}
	if survey == nil {
		return nil, domain.NewSurveyNotFoundError(surveyID)
	}

	summary := buildSummary(survey, responses)
	s.toCache(ctx, surveyID, summary)
	return summary, nil
}

// buildSummary tallies answers per question. Single-choice questions count
// answers in option declaration order, ignoring answers that match no option.
// Paragraph questions collect the raw non-empty texts. Everything else is
// reported as unsupported so clients can render a placeholder.
func buildSummary(survey *domain.Survey, responses []domain.SurveyResponse) *dto.AnalyticsSummaryResponse {
	questions := make([]dto.QuestionAnalytics, 0, len(survey.Questions))
	for i := range survey.Questions {
		q := &survey.Questions[i]
		qa := dto.QuestionAnalytics{
			QuestionID: q.ID,
			Title:      q.Title,
			Type:       string(q.Type),
		}
		switch q.Type {
		case domain.SingleChoice:
			qa.Supported = true
			qa.Choices = tallyChoices(q, responses)
		case domain.Paragraph:
			qa.Supported = true
			qa.TextAnswers = collectTexts(q.ID, responses)
		}
		questions = append(questions, qa)
	}
	return &dto.AnalyticsSummaryResponse{
		SurveyID:       survey.ID,
		Title:          survey.Title,
		TotalResponses: len(responses),
		Questions:      questions,
	}
}

func tallyChoices(q *domain.Question, responses []domain.SurveyResponse) []dto.ChoiceCount {
	counts := make([]dto.ChoiceCount, 0, len(q.Options))
	index := make(map[string]int, len(q.Options))
	for _, opt := range q.Options {
		index[opt.Label] = len(counts)
		counts = append(counts, dto.ChoiceCount{Label: opt.Label})
	}
	for _, r := range responses {
		answer, ok := r.Answers[q.ID].(string)
		if !ok {
			continue
		}
		if i, ok := index[answer]; ok {
			counts[i].Count++
		}
	}
	return counts
}

func collectTexts(questionID string, responses []domain.SurveyResponse) []string {
	texts := make([]string, 0, len(responses))
	for _, r := range responses {
		if text, ok := r.Answers[questionID].(string); ok && text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

func (s *analyticsService) fromCache(ctx context.Context, surveyID string) *dto.AnalyticsSummaryResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, cachekeys.AnalyticsSummaryKey(surveyID))
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read analytics cache",
				zap.String("survey_id", surveyID),
				zap.Error(err))
		}
		return nil
	}
	var summary dto.AnalyticsSummaryResponse
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		logger.Get().Warn("Discarding malformed analytics cache entry",
			zap.String("survey_id", surveyID),
			zap.Error(err))
		return nil
	}
	return &summary
}

func (s *analyticsService) toCache(ctx context.Context, surveyID string, summary *dto.AnalyticsSummaryResponse) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cachekeys.AnalyticsSummaryKey(surveyID), string(data), s.cacheTTL); err != nil {
		logger.Get().Warn("Failed to write analytics cache",
			zap.String("survey_id", surveyID),
			zap.Error(err))
	}
}
