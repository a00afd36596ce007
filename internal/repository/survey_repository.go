package repository

import (
	"context"
	"sort"
	"time"

	"surveyforge/internal/domain"
	"surveyforge/internal/store"
	"surveyforge/internal/util"
)

// documentSurveyRepository implements domain.SurveyRepository over the
// document store.
type documentSurveyRepository struct {
	store *store.Store
}

// NewSurveyRepository creates a survey repository backed by s.
func NewSurveyRepository(s *store.Store) domain.SurveyRepository {
	return &documentSurveyRepository{store: s}
}

// countResponses tallies stored responses per survey. Survey reads always
// report this live count instead of the persisted responsesCount field.
func countResponses(doc *store.Document, surveyID string) int {
	n := 0
	for i := range doc.Responses {
		if doc.Responses[i].SurveyID == surveyID {
			n++
		}
	}
	return n
}

// List returns all surveys ordered by creation timestamp descending.
func (r *documentSurveyRepository) List(ctx context.Context) ([]domain.Survey, error) {
	var surveys []domain.Survey
	err := r.store.View(ctx, func(doc *store.Document) error {
		copied, err := store.Copy(doc.Surveys)
		if err != nil {
			return domain.NewInternalError("Failed to copy surveys", err)
		}
		for i := range copied {
			copied[i].ResponsesCount = countResponses(doc, copied[i].ID)
		}
		surveys = copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(surveys, func(i, j int) bool {
		return surveys[i].CreatedAt.After(surveys[j].CreatedAt)
	})
	return surveys, nil
}

// GetByID returns (nil, nil) when no survey has the given identifier.
func (r *documentSurveyRepository) GetByID(ctx context.Context, id string) (*domain.Survey, error) {
	var found *domain.Survey
	err := r.store.View(ctx, func(doc *store.Document) error {
		for i := range doc.Surveys {
			if doc.Surveys[i].ID == id {
				copied, err := store.Copy(doc.Surveys[i])
				if err != nil {
					return domain.NewInternalError("Failed to copy survey", err)
				}
				copied.ResponsesCount = countResponses(doc, id)
				found = &copied
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create assigns an identifier and creation timestamp, fills unspecified
// optional fields with defaults and inserts the survey at the front of the
// collection.
func (r *documentSurveyRepository) Create(ctx context.Context, draft domain.SurveyDraft) (*domain.Survey, error) {
	status := draft.Status
	if status == "" {
		status = domain.StatusDraft
	}
	questions := draft.Questions
	if questions == nil {
		questions = []domain.Question{}
	}
	survey := domain.Survey{
		ID:              util.NewULID(),
		Title:           draft.Title,
		Description:     draft.Description,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
		Questions:       questions,
		ResponsesCount:  0,
		WelcomeMessage:  draft.WelcomeMessage,
		ThankYouMessage: draft.ThankYouMessage,
		IsAnonymous:     draft.IsAnonymous,
	}
	if err := survey.Validate(); err != nil {
		return nil, err
	}

	err := r.store.Update(ctx, func(doc *store.Document) error {
		doc.Surveys = append([]domain.Survey{survey}, doc.Surveys...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	copied, err := store.Copy(survey)
	if err != nil {
		return nil, domain.NewInternalError("Failed to copy survey", err)
	}
	return &copied, nil
}

// Update merges the non-nil fields of update onto the stored survey and
// persists the whole document. It fails with a not-found error when the
// survey is absent.
func (r *documentSurveyRepository) Update(ctx context.Context, id string, update domain.SurveyUpdate) (*domain.Survey, error) {
	var merged domain.Survey
	err := r.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Surveys {
			if doc.Surveys[i].ID != id {
				continue
			}
			s := &doc.Surveys[i]
			if update.Title != nil {
				s.Title = *update.Title
			}
			if update.Description != nil {
				s.Description = *update.Description
			}
			if update.Status != nil {
				s.Status = *update.Status
			}
			if update.Questions != nil {
				s.Questions = *update.Questions
			}
			if update.WelcomeMessage != nil {
				s.WelcomeMessage = *update.WelcomeMessage
			}
			if update.ThankYouMessage != nil {
				s.ThankYouMessage = *update.ThankYouMessage
			}
			if update.IsAnonymous != nil {
				s.IsAnonymous = *update.IsAnonymous
			}
			if err := s.Validate(); err != nil {
				return err
			}
			merged = *s
			merged.ResponsesCount = countResponses(doc, id)
			return nil
		}
		return domain.NewSurveyNotFoundError(id)
	})
	if err != nil {
		return nil, err
	}
	copied, err := store.Copy(merged)
	if err != nil {
		return nil, domain.NewInternalError("Failed to copy survey", err)
	}
	return &copied, nil
}

// Delete removes the survey and all responses referencing it. Deleting a
// non-existent id is a no-op, not a failure.
func (r *documentSurveyRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *store.Document) error {
		surveys := doc.Surveys[:0]
		for i := range doc.Surveys {
			if doc.Surveys[i].ID != id {
				surveys = append(surveys, doc.Surveys[i])
			}
		}
		doc.Surveys = surveys

		responses := doc.Responses[:0]
		for i := range doc.Responses {
			if doc.Responses[i].SurveyID != id {
				responses = append(responses, doc.Responses[i])
			}
		}
		doc.Responses = responses
		return nil
	})
}
