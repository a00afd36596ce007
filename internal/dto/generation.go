package dto

// GenerateSurveyRequest carries the free-text topic for AI survey generation.
type GenerateSurveyRequest struct {
	Prompt string `json:"prompt"`
}
