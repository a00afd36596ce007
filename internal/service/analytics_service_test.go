package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	cachekeys "surveyforge/internal/cache"
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func analyticsFixture() (*domain.Survey, []domain.SurveyResponse) {
	survey := &domain.Survey{
		ID:     "s1",
		Title:  "Lunch Survey",
		Status: domain.StatusPublished,
		Questions: []domain.Question{
			{
				ID:    "q1",
				Type:  domain.SingleChoice,
				Title: "Favorite cuisine",
				Options: []domain.Entry{
					{ID: "o1", Label: "Italian"},
					{ID: "o2", Label: "Japanese"},
					{ID: "o3", Label: "Mexican"},
				},
			},
			{ID: "q2", Type: domain.Paragraph, Title: "Anything else?"},
			{ID: "q3", Type: domain.Rating, Title: "Overall", Scale: 5},
		},
	}
	responses := []domain.SurveyResponse{
		{ID: "r1", SurveyID: "s1", Answers: map[string]any{"q1": "Japanese", "q2": "More variety please"}},
		{ID: "r2", SurveyID: "s1", Answers: map[string]any{"q1": "Japanese", "q2": ""}},
		{ID: "r3", SurveyID: "s1", Answers: map[string]any{"q1": "Italian", "q3": 4}},
		// An answer matching no option is ignored by the tally.
		{ID: "r4", SurveyID: "s1", Answers: map[string]any{"q1": "Thai"}},
	}
	return survey, responses
}

func TestAnalyticsService_GetSurveySummary(t *testing.T) {
	surveyRepo := new(MockSurveyRepository)
	responseRepo := new(MockResponseRepository)
	svc := NewAnalyticsService(surveyRepo, responseRepo, nil, 0)

	survey, responses := analyticsFixture()
	surveyRepo.On("GetByID", mock.Anything, "s1").Return(survey, nil)
	responseRepo.On("List", mock.Anything, "s1").Return(responses, nil)

	summary, err := svc.GetSurveySummary(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", summary.SurveyID)
	assert.Equal(t, "Lunch Survey", summary.Title)
	assert.Equal(t, 4, summary.TotalResponses)
	require.Len(t, summary.Questions, 3)

	// Single choice: counts in option declaration order, unknown answers dropped.
	choice := summary.Questions[0]
	assert.True(t, choice.Supported)
	assert.Equal(t, []dto.ChoiceCount{
		{Label: "Italian", Count: 1},
		{Label: "Japanese", Count: 2},
		{Label: "Mexican", Count: 0},
	}, choice.Choices)

	// Paragraph: raw non-empty texts.
	paragraph := summary.Questions[1]
	assert.True(t, paragraph.Supported)
	assert.Equal(t, []string{"More variety please"}, paragraph.TextAnswers)

	// Rating is not aggregated.
	rating := summary.Questions[2]
	assert.False(t, rating.Supported)
	assert.Empty(t, rating.Choices)
	assert.Empty(t, rating.TextAnswers)
}

func TestAnalyticsService_SurveyAbsent(t *testing.T) {
	surveyRepo := new(MockSurveyRepository)
	responseRepo := new(MockResponseRepository)
	svc := NewAnalyticsService(surveyRepo, responseRepo, nil, 0)

	surveyRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)
	responseRepo.On("List", mock.Anything, "missing").Return([]domain.SurveyResponse{}, nil)

	_, err := svc.GetSurveySummary(context.Background(), "missing")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrSurveyNotFound, domainErr.Code)
}

func TestAnalyticsService_CacheHitSkipsRepositories(t *testing.T) {
	surveyRepo := new(MockSurveyRepository)
	responseRepo := new(MockResponseRepository)
	cache := new(MockCache)
	svc := NewAnalyticsService(surveyRepo, responseRepo, cache, time.Minute)

	cached := dto.AnalyticsSummaryResponse{SurveyID: "s1", Title: "Cached", TotalResponses: 7}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	cache.On("Get", mock.Anything, cachekeys.AnalyticsSummaryKey("s1")).Return(string(data), nil)

	summary, err := svc.GetSurveySummary(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Cached", summary.Title)
	assert.Equal(t, 7, summary.TotalResponses)
	surveyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	responseRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestAnalyticsService_CacheMissComputesAndStores(t *testing.T) {
	surveyRepo := new(MockSurveyRepository)
	responseRepo := new(MockResponseRepository)
	cache := new(MockCache)
	svc := NewAnalyticsService(surveyRepo, responseRepo, cache, time.Minute)

	survey, responses := analyticsFixture()
	cache.On("Get", mock.Anything, cachekeys.AnalyticsSummaryKey("s1")).Return("", domain.ErrCacheMiss)
	surveyRepo.On("GetByID", mock.Anything, "s1").Return(survey, nil)
	responseRepo.On("List", mock.Anything, "s1").Return(responses, nil)
	cache.On("Set", mock.Anything, cachekeys.AnalyticsSummaryKey("s1"), mock.Anything, time.Minute).Return(nil)

	summary, err := svc.GetSurveySummary(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalResponses)
	cache.AssertExpectations(t)
}
