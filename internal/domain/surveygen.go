package domain

import "context"

// GeneratedEntry is an option/row/column produced by the generator. Only the
// label survives post-processing; identifiers are assigned when the result is
// merged into a new survey.
type GeneratedEntry struct {
	Label string `json:"label"`
}

// GeneratedQuestion is one question skeleton produced by the generator.
type GeneratedQuestion struct {
	Type        QuestionType     `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	IsRequired  bool             `json:"isRequired"`
	Options     []GeneratedEntry `json:"options,omitempty"`
	Scale       int              `json:"scale,omitempty"`
	Statements  []string         `json:"statements,omitempty"`
	Choices     []string         `json:"choices,omitempty"`
	Rows        []GeneratedEntry `json:"rows,omitempty"`
	Columns     []GeneratedEntry `json:"columns,omitempty"`
}

// GeneratedSurvey is the structured result of one generation call.
type GeneratedSurvey struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []GeneratedQuestion `json:"questions"`
}

// SurveyGenerationService defines the interface for turning a free-text topic
// into a structured survey skeleton. One request-response call, no streaming,
// no retry; the adapter fails with a generation DomainError when the call
// errors, the response does not parse, or no credential is configured.
type SurveyGenerationService interface {
	GenerateSurvey(ctx context.Context, prompt string) (*GeneratedSurvey, error)
}
