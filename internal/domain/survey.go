package domain

import (
	"context"
	"time"
)

// SurveyStatus is the publication state of a survey.
type SurveyStatus string

const (
	StatusDraft     SurveyStatus = "draft"
	StatusPublished SurveyStatus = "published"
	StatusClosed    SurveyStatus = "closed"
)

// IsValid reports whether s is a known status.
func (s SurveyStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusClosed
}

// Survey is a named, ordered collection of questions. Question order is the
// respondent-facing order. ResponsesCount is computed from the response
// collection on every read; the stored value is never trusted.
type Survey struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Status          SurveyStatus `json:"status"`
	CreatedAt       time.Time    `json:"createdAt"`
	Questions       []Question   `json:"questions"`
	ResponsesCount  int          `json:"responsesCount"`
	WelcomeMessage  string       `json:"welcomeMessage"`
	ThankYouMessage string       `json:"thankYouMessage"`
	IsAnonymous     bool         `json:"isAnonymous"`
}

// Validate validates the survey
func (s *Survey) Validate() error {
	if s.Title == "" {
		return NewInvalidInputError("survey title is required")
	}
	if !s.Status.IsValid() {
		return NewInvalidInputError("survey status must be draft, published or closed")
	}
	for i := range s.Questions {
		if err := s.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// QuestionByID returns a pointer to the question with the given identifier,
// or nil if the survey has no such question.
func (s *Survey) QuestionByID(questionID string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return &s.Questions[i]
		}
	}
	return nil
}

// SurveyDraft carries the caller-supplied fields of a new survey. The store
// assigns the identifier and creation timestamp and fills the remaining
// optional fields with their defaults.
type SurveyDraft struct {
	Title           string
	Description     string
	Status          SurveyStatus
	Questions       []Question
	WelcomeMessage  string
	ThankYouMessage string
	IsAnonymous     bool
}

// SurveyUpdate enumerates the survey fields a partial update may change.
// Nil fields retain their prior values.
type SurveyUpdate struct {
	Title           *string
	Description     *string
	Status          *SurveyStatus
	Questions       *[]Question
	WelcomeMessage  *string
	ThankYouMessage *string
	IsAnonymous     *bool
}

// SurveyRepository defines the interface for survey persistence.
// Reads return (nil, nil) when the survey does not exist; mutations that
// require an existing target return a not-found DomainError.
type SurveyRepository interface {
	List(ctx context.Context) ([]Survey, error)
	GetByID(ctx context.Context, id string) (*Survey, error)
	Create(ctx context.Context, draft SurveyDraft) (*Survey, error)
	Update(ctx context.Context, id string, update SurveyUpdate) (*Survey, error)
	// Delete removes the survey and cascades to its responses. Deleting a
	// non-existent id is a no-op.
	Delete(ctx context.Context, id string) error
}
