package service

import (
	"context"
	"testing"
	"time"

	cachekeys "surveyforge/internal/cache"
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResponseService_SubmitResponse(t *testing.T) {
	repo := new(MockResponseRepository)
	cache := new(MockCache)
	svc := NewResponseService(repo, cache)

	answers := map[string]any{"q1": "yes"}
	repo.On("Create", mock.Anything, "s1", answers).Return(&domain.SurveyResponse{
		ID: "r1", SurveyID: "s1", SubmittedAt: time.Now().UTC(), Answers: answers,
	}, nil)
	// A submission invalidates the cached summary for that survey.
	cache.On("Delete", mock.Anything, cachekeys.AnalyticsSummaryKey("s1")).Return(nil)

	got, err := svc.SubmitResponse(context.Background(), "s1", &dto.SubmitResponseRequest{Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
	cache.AssertExpectations(t)
}

func TestResponseService_SubmitToAbsentSurvey(t *testing.T) {
	repo := new(MockResponseRepository)
	svc := NewResponseService(repo, nil)

	repo.On("Create", mock.Anything, "missing", mock.Anything).
		Return(nil, domain.NewSurveyNotFoundError("missing"))

	_, err := svc.SubmitResponse(context.Background(), "missing", &dto.SubmitResponseRequest{
		Answers: map[string]any{"q1": "yes"},
	})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrSurveyNotFound, domainErr.Code)
}

func TestResponseService_ListResponses(t *testing.T) {
	repo := new(MockResponseRepository)
	svc := NewResponseService(repo, nil)

	repo.On("List", mock.Anything, "s1").Return([]domain.SurveyResponse{
		{ID: "r1", SurveyID: "s1", Answers: map[string]any{"q1": "yes"}},
		{ID: "r2", SurveyID: "s1", Answers: map[string]any{"q1": "no"}},
	}, nil)

	got, err := svc.ListResponses(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, "r1", got.Responses[0].ID)
}
