package dto

import (
	"time"

	"surveyforge/internal/domain"
)

// ResponseRecord represents one submitted survey response in the API.
type ResponseRecord struct {
	ID          string         `json:"id"`
	SurveyID    string         `json:"survey_id"`
	SubmittedAt time.Time      `json:"submitted_at"`
	Answers     map[string]any `json:"answers"`
}

// ResponseListResponse represents a response collection in the API.
type ResponseListResponse struct {
	Responses []ResponseRecord `json:"responses"`
	Total     int              `json:"total"`
}

// SubmitResponseRequest carries one respondent's answers keyed by question
// identifier.
type SubmitResponseRequest struct {
	Answers map[string]any `json:"answers"`
}

// FromDomainResponse maps a domain response to its API representation.
func FromDomainResponse(r *domain.SurveyResponse) ResponseRecord {
	return ResponseRecord{
		ID:          r.ID,
		SurveyID:    r.SurveyID,
		SubmittedAt: r.SubmittedAt,
		Answers:     r.Answers,
	}
}
