package service

import (
	"context"

	"surveyforge/internal/builder"
	cachekeys "surveyforge/internal/cache"
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/logger"
	"surveyforge/internal/util"

	"go.uber.org/zap"
)

// SurveyService defines the interface for survey CRUD and builder operations
type SurveyService interface {
	ListSurveys(ctx context.Context) (*dto.SurveyListResponse, error)
	GetSurvey(ctx context.Context, id string) (*dto.SurveyResponse, error)
	CreateSurvey(ctx context.Context, req *dto.CreateSurveyRequest) (*dto.SurveyResponse, error)
	UpdateSurvey(ctx context.Context, id string, req *dto.UpdateSurveyRequest) (*dto.SurveyResponse, error)
	DeleteSurvey(ctx context.Context, id string) error

	AddQuestion(ctx context.Context, surveyID, questionType string) (*dto.SurveyResponse, error)
	UpdateQuestion(ctx context.Context, surveyID, questionID string, req *dto.UpdateQuestionRequest) (*dto.SurveyResponse, error)
	DeleteQuestion(ctx context.Context, surveyID, questionID string) (*dto.SurveyResponse, error)
	ReorderQuestions(ctx context.Context, surveyID, sourceID, destinationID string) (*dto.SurveyResponse, error)

	AddEntry(ctx context.Context, surveyID, questionID string, kind builder.EntryKind) (*dto.SurveyResponse, error)
	UpdateEntry(ctx context.Context, surveyID, questionID, entryID string, kind builder.EntryKind, label string) (*dto.SurveyResponse, error)
	DeleteEntry(ctx context.Context, surveyID, questionID, entryID string, kind builder.EntryKind) (*dto.SurveyResponse, error)
}

// surveyService implements SurveyService. Every builder operation loads a
// working copy of the survey, applies the edit and pushes the full question
// sequence back through the repository. The store stays authoritative: a
// failed persist surfaces the error and discards the working copy, so no
// unreconciled local state can survive.
type surveyService struct {
	repo  domain.SurveyRepository
	cache domain.Cache // may be nil when no cache is configured
	newID builder.IDGenerator
}

// NewSurveyService creates a new instance of surveyService
func NewSurveyService(repo domain.SurveyRepository, cache domain.Cache) SurveyService {
	return &surveyService{
		repo:  repo,
		cache: cache,
		newID: util.NewULID,
	}
}

// ListSurveys implements SurveyService
func (s *surveyService) ListSurveys(ctx context.Context) (*dto.SurveyListResponse, error) {
	surveys, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list surveys", err)
	}
	out := make([]dto.SurveyResponse, 0, len(surveys))
	for i := range surveys {
		out = append(out, *dto.FromDomainSurvey(&surveys[i]))
	}
	return &dto.SurveyListResponse{Surveys: out, Total: len(out)}, nil
}

// GetSurvey implements SurveyService
func (s *surveyService) GetSurvey(ctx context.Context, id string) (*dto.SurveyResponse, error) {
	survey, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get survey", err)
	}
	if survey == nil {
		return nil, domain.NewSurveyNotFoundError(id)
	}
	return dto.FromDomainSurvey(survey), nil
}

// CreateSurvey implements SurveyService
func (s *surveyService) CreateSurvey(ctx context.Context, req *dto.CreateSurveyRequest) (*dto.SurveyResponse, error) {
	survey, err := s.repo.Create(ctx, domain.SurveyDraft{
		Title:           req.Title,
		Description:     req.Description,
		Status:          domain.SurveyStatus(req.Status),
		WelcomeMessage:  req.WelcomeMessage,
		ThankYouMessage: req.ThankYouMessage,
		IsAnonymous:     req.IsAnonymous,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromDomainSurvey(survey), nil
}

// UpdateSurvey implements SurveyService
func (s *surveyService) UpdateSurvey(ctx context.Context, id string, req *dto.UpdateSurveyRequest) (*dto.SurveyResponse, error) {
	update := domain.SurveyUpdate{
		Title:           req.Title,
		Description:     req.Description,
		WelcomeMessage:  req.WelcomeMessage,
		ThankYouMessage: req.ThankYouMessage,
		IsAnonymous:     req.IsAnonymous,
	}
	if req.Status != nil {
		status := domain.SurveyStatus(*req.Status)
		update.Status = &status
	}
	survey, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidateAnalytics(ctx, id)
	return dto.FromDomainSurvey(survey), nil
}

// DeleteSurvey implements SurveyService. Deleting a non-existent survey is a
// no-op.
func (s *surveyService) DeleteSurvey(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateAnalytics(ctx, id)
	return nil
}

// AddQuestion synthesizes a question of the requested type and appends it to
// the end of the survey's question sequence.
func (s *surveyService) AddQuestion(ctx context.Context, surveyID, questionType string) (*dto.SurveyResponse, error) {
	return s.editQuestions(ctx, surveyID, func(questions []domain.Question) ([]domain.Question, error) {
		q, err := builder.NewQuestion(domain.QuestionType(questionType), s.newID)
		if err != nil {
			return nil, err
		}
		return builder.AppendQuestion(questions, q), nil
	})
}

// UpdateQuestion shallow-merges the request onto the matching question.
func (s *surveyService) UpdateQuestion(ctx context.Context, surveyID, questionID string, req *dto.UpdateQuestionRequest) (*dto.SurveyResponse, error) {
	return s.editQuestions(ctx, surveyID, func(questions []domain.Question) ([]domain.Question, error) {
		return builder.MergeQuestion(questions, questionID, req.ToQuestionPatch(), s.newID)
	})
}

// DeleteQuestion removes the matching question; subsequent questions shift up.
func (s *surveyService) DeleteQuestion(ctx context.Context, surveyID, questionID string) (*dto.SurveyResponse, error) {
	return s.editQuestions(ctx, surveyID, func(questions []domain.Question) ([]domain.Question, error) {
		return builder.RemoveQuestion(questions, questionID)
	})
}

// ReorderQuestions applies one drag gesture to the question sequence.
func (s *surveyService) ReorderQuestions(ctx context.Context, surveyID, sourceID, destinationID string) (*dto.SurveyResponse, error) {
	return s.editQuestions(ctx, surveyID, func(questions []domain.Question) ([]domain.Question, error) {
		return builder.MoveQuestion(questions, sourceID, destinationID), nil
	})
}

// AddEntry appends an option/row/column with a default label to a question.
func (s *surveyService) AddEntry(ctx context.Context, surveyID, questionID string, kind builder.EntryKind) (*dto.SurveyResponse, error) {
	return s.editQuestion(ctx, surveyID, questionID, func(q domain.Question) (domain.Question, error) {
		return builder.AddEntry(q, kind, s.newID)
	})
}

// UpdateEntry replaces one option/row/column label.
func (s *surveyService) UpdateEntry(ctx context.Context, surveyID, questionID, entryID string, kind builder.EntryKind, label string) (*dto.SurveyResponse, error) {
	return s.editQuestion(ctx, surveyID, questionID, func(q domain.Question) (domain.Question, error) {
		return builder.UpdateEntry(q, kind, entryID, label)
	})
}

// DeleteEntry removes one option/row/column.
func (s *surveyService) DeleteEntry(ctx context.Context, surveyID, questionID, entryID string, kind builder.EntryKind) (*dto.SurveyResponse, error) {
	return s.editQuestion(ctx, surveyID, questionID, func(q domain.Question) (domain.Question, error) {
		return builder.RemoveEntry(q, kind, entryID)
	})
}

// editQuestions loads the survey's question sequence, applies edit and
// persists the result as a partial survey update.
func (s *surveyService) editQuestions(ctx context.Context, surveyID string, edit func([]domain.Question) ([]domain.Question, error)) (*dto.SurveyResponse, error) {
	survey, err := s.repo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get survey", err)
	}
	if survey == nil {
		return nil, domain.NewSurveyNotFoundError(surveyID)
	}

	questions, err := edit(survey.Questions)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, surveyID, domain.SurveyUpdate{Questions: &questions})
	if err != nil {
		return nil, err
	}
	s.invalidateAnalytics(ctx, surveyID)
	return dto.FromDomainSurvey(updated), nil
}

// editQuestion narrows editQuestions to a single question.
func (s *surveyService) editQuestion(ctx context.Context, surveyID, questionID string, edit func(domain.Question) (domain.Question, error)) (*dto.SurveyResponse, error) {
	return s.editQuestions(ctx, surveyID, func(questions []domain.Question) ([]domain.Question, error) {
		for i := range questions {
			if questions[i].ID != questionID {
				continue
			}
			edited, err := edit(questions[i])
			if err != nil {
				return nil, err
			}
			out := make([]domain.Question, len(questions))
			copy(out, questions)
			out[i] = edited
			return out, nil
		}
		return nil, domain.NewQuestionNotFoundError(questionID)
	})
}

// invalidateAnalytics drops the cached analytics summary after a mutation.
// Cache failures are logged, never surfaced; the next summary read simply
// recomputes.
func (s *surveyService) invalidateAnalytics(ctx context.Context, surveyID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cachekeys.AnalyticsSummaryKey(surveyID)); err != nil {
		logger.Get().Warn("Failed to invalidate analytics cache",
			zap.String("survey_id", surveyID),
			zap.Error(err))
	}
}
