package repository

import (
	"context"
	"time"

	"surveyforge/internal/domain"
	"surveyforge/internal/store"
	"surveyforge/internal/util"
)

// documentResponseRepository implements domain.ResponseRepository over the
// document store.
type documentResponseRepository struct {
	store *store.Store
}

// NewResponseRepository creates a response repository backed by s.
func NewResponseRepository(s *store.Store) domain.ResponseRepository {
	return &documentResponseRepository{store: s}
}

// List returns all responses, or only those for surveyID when it is
// non-empty, in submission order.
func (r *documentResponseRepository) List(ctx context.Context, surveyID string) ([]domain.SurveyResponse, error) {
	var responses []domain.SurveyResponse
	err := r.store.View(ctx, func(doc *store.Document) error {
		matched := make([]domain.SurveyResponse, 0, len(doc.Responses))
		for i := range doc.Responses {
			if surveyID == "" || doc.Responses[i].SurveyID == surveyID {
				matched = append(matched, doc.Responses[i])
			}
		}
		copied, err := store.Copy(matched)
		if err != nil {
			return domain.NewInternalError("Failed to copy responses", err)
		}
		responses = copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// Create stores a new response for surveyID. The survey must exist.
func (r *documentResponseRepository) Create(ctx context.Context, surveyID string, answers map[string]any) (*domain.SurveyResponse, error) {
	response := domain.SurveyResponse{
		ID:          util.NewULID(),
		SurveyID:    surveyID,
		SubmittedAt: time.Now().UTC(),
		Answers:     answers,
	}
	if err := response.Validate(); err != nil {
		return nil, err
	}

	err := r.store.Update(ctx, func(doc *store.Document) error {
		found := false
		for i := range doc.Surveys {
			if doc.Surveys[i].ID == surveyID {
				found = true
				break
			}
		}
		if !found {
			return domain.NewSurveyNotFoundError(surveyID)
		}
		doc.Responses = append(doc.Responses, response)
		return nil
	})
	if err != nil {
		return nil, err
	}
	copied, err := store.Copy(response)
	if err != nil {
		return nil, domain.NewInternalError("Failed to copy response", err)
	}
	return &copied, nil
}
