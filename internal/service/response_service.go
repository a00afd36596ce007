package service

import (
	"context"

	cachekeys "surveyforge/internal/cache"
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/logger"

	"go.uber.org/zap"
)

// ResponseService defines the interface for collecting submitted responses
type ResponseService interface {
	ListResponses(ctx context.Context, surveyID string) (*dto.ResponseListResponse, error)
	SubmitResponse(ctx context.Context, surveyID string, req *dto.SubmitResponseRequest) (*dto.ResponseRecord, error)
}

type responseService struct {
	repo  domain.ResponseRepository
	cache domain.Cache // may be nil when no cache is configured
}

// NewResponseService creates a new instance of responseService
func NewResponseService(repo domain.ResponseRepository, cache domain.Cache) ResponseService {
	return &responseService{repo: repo, cache: cache}
}

// ListResponses implements ResponseService. An empty surveyID lists every
// response in the workspace.
func (s *responseService) ListResponses(ctx context.Context, surveyID string) (*dto.ResponseListResponse, error) {
	responses, err := s.repo.List(ctx, surveyID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list responses", err)
	}
	out := make([]dto.ResponseRecord, 0, len(responses))
	for i := range responses {
		out = append(out, dto.FromDomainResponse(&responses[i]))
	}
	return &dto.ResponseListResponse{Responses: out, Total: len(out)}, nil
}

// SubmitResponse implements ResponseService
func (s *responseService) SubmitResponse(ctx context.Context, surveyID string, req *dto.SubmitResponseRequest) (*dto.ResponseRecord, error) {
	response, err := s.repo.Create(ctx, surveyID, req.Answers)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// A new submission makes any cached summary stale.
		if err := s.cache.Delete(ctx, cachekeys.AnalyticsSummaryKey(surveyID)); err != nil {
			logger.Get().Warn("Failed to invalidate analytics cache",
				zap.String("survey_id", surveyID),
				zap.Error(err))
		}
	}

	record := dto.FromDomainResponse(response)
	return &record, nil
}
