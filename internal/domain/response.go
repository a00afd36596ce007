package domain

import (
	"context"
	"time"
)

// SurveyResponse is one respondent's complete set of answers to a survey,
// keyed by question identifier. Answer values are untyped: a string for
// choice/text/date answers, a list of strings for multiple-choice and
// free-form structures for likert/matrix grids.
type SurveyResponse struct {
	ID          string         `json:"id"`
	SurveyID    string         `json:"surveyId"`
	SubmittedAt time.Time      `json:"submittedAt"`
	Answers     map[string]any `json:"answers"`
}

// Validate validates the response
func (r *SurveyResponse) Validate() error {
	if r.SurveyID == "" {
		return NewInvalidInputError("response survey id is required")
	}
	if len(r.Answers) == 0 {
		return NewInvalidInputError("response must contain at least one answer")
	}
	return nil
}

// ResponseRepository defines the interface for response persistence.
type ResponseRepository interface {
	// List returns all responses, or only those for surveyID when it is
	// non-empty, in submission order.
	List(ctx context.Context, surveyID string) ([]SurveyResponse, error)
	// Create stores a new response for surveyID and returns the full record.
	// It fails with a survey not-found DomainError when the survey is absent.
	Create(ctx context.Context, surveyID string, answers map[string]any) (*SurveyResponse, error)
}
