package dto

import (
	"time"

	"surveyforge/internal/domain"
)

// EntryDTO represents an option, row or column entry in the API.
type EntryDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// QuestionDTO represents a question in the API response
// @Description Question information with its type-dependent payload
type QuestionDTO struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsRequired  bool       `json:"is_required"`
	Options     []EntryDTO `json:"options,omitempty"`
	Scale       int        `json:"scale,omitempty"`
	Statements  []string   `json:"statements,omitempty"`
	Choices     []string   `json:"choices,omitempty"`
	Rows        []EntryDTO `json:"rows,omitempty"`
	Columns     []EntryDTO `json:"columns,omitempty"`
}

// SurveyResponse represents a survey in the API response
// @Description Survey information
type SurveyResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	Questions       []QuestionDTO `json:"questions"`
	ResponsesCount  int           `json:"responses_count"`
	WelcomeMessage  string        `json:"welcome_message"`
	ThankYouMessage string        `json:"thank_you_message"`
	IsAnonymous     bool          `json:"is_anonymous"`
}

// SurveyListResponse represents the survey collection in the API response
type SurveyListResponse struct {
	Surveys []SurveyResponse `json:"surveys"`
	Total   int              `json:"total"`
}

// CreateSurveyRequest represents the request body for creating a survey
// @Description Request body for creating a survey
type CreateSurveyRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Status          string `json:"status,omitempty"`
	WelcomeMessage  string `json:"welcome_message,omitempty"`
	ThankYouMessage string `json:"thank_you_message,omitempty"`
	IsAnonymous     bool   `json:"is_anonymous,omitempty"`
}

// UpdateSurveyRequest enumerates the survey fields a partial update may
// change. Absent fields retain their prior values. Questions are edited
// through the dedicated question operations, not here.
type UpdateSurveyRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Status          *string `json:"status,omitempty"`
	WelcomeMessage  *string `json:"welcome_message,omitempty"`
	ThankYouMessage *string `json:"thank_you_message,omitempty"`
	IsAnonymous     *bool   `json:"is_anonymous,omitempty"`
}

// AddQuestionRequest represents the request body for adding a question
type AddQuestionRequest struct {
	Type string `json:"type"`
}

// UpdateQuestionRequest enumerates the question fields a partial update may
// change. Supplying a different type resets the payload to the new type's
// defaults before the payload fields apply.
type UpdateQuestionRequest struct {
	Type        *string     `json:"type,omitempty"`
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	IsRequired  *bool       `json:"is_required,omitempty"`
	Options     *[]EntryDTO `json:"options,omitempty"`
	Scale       *int        `json:"scale,omitempty"`
	Statements  *[]string   `json:"statements,omitempty"`
	Choices     *[]string   `json:"choices,omitempty"`
	Rows        *[]EntryDTO `json:"rows,omitempty"`
	Columns     *[]EntryDTO `json:"columns,omitempty"`
}

// ReorderQuestionsRequest carries the source and destination question
// identifiers of one drag gesture.
type ReorderQuestionsRequest struct {
	SourceID      string `json:"source_id"`
	DestinationID string `json:"destination_id"`
}

// UpdateEntryRequest replaces one option/row/column label.
type UpdateEntryRequest struct {
	Label string `json:"label"`
}

// FromDomainSurvey maps a domain survey to its API representation.
func FromDomainSurvey(s *domain.Survey) *SurveyResponse {
	questions := make([]QuestionDTO, 0, len(s.Questions))
	for i := range s.Questions {
		questions = append(questions, FromDomainQuestion(&s.Questions[i]))
	}
	return &SurveyResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		Questions:       questions,
		ResponsesCount:  s.ResponsesCount,
		WelcomeMessage:  s.WelcomeMessage,
		ThankYouMessage: s.ThankYouMessage,
		IsAnonymous:     s.IsAnonymous,
	}
}

// FromDomainQuestion maps a domain question to its API representation.
func FromDomainQuestion(q *domain.Question) QuestionDTO {
	return QuestionDTO{
		ID:          q.ID,
		Type:        string(q.Type),
		Title:       q.Title,
		Description: q.Description,
		IsRequired:  q.IsRequired,
		Options:     fromDomainEntries(q.Options),
		Scale:       q.Scale,
		Statements:  q.Statements,
		Choices:     q.Choices,
		Rows:        fromDomainEntries(q.Rows),
		Columns:     fromDomainEntries(q.Columns),
	}
}

// ToQuestionPatch maps an update request to the domain patch type.
func (r *UpdateQuestionRequest) ToQuestionPatch() domain.QuestionPatch {
	patch := domain.QuestionPatch{
		Title:       r.Title,
		Description: r.Description,
		IsRequired:  r.IsRequired,
		Scale:       r.Scale,
		Statements:  r.Statements,
		Choices:     r.Choices,
	}
	if r.Type != nil {
		t := domain.QuestionType(*r.Type)
		patch.Type = &t
	}
	if r.Options != nil {
		entries := toDomainEntries(*r.Options)
		patch.Options = &entries
	}
	if r.Rows != nil {
		entries := toDomainEntries(*r.Rows)
		patch.Rows = &entries
	}
	if r.Columns != nil {
		entries := toDomainEntries(*r.Columns)
		patch.Columns = &entries
	}
	return patch
}

func fromDomainEntries(entries []domain.Entry) []EntryDTO {
	if entries == nil {
		return nil
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryDTO{ID: e.ID, Label: e.Label})
	}
	return out
}

func toDomainEntries(entries []EntryDTO) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Entry{ID: e.ID, Label: e.Label})
	}
	return out
}
