package dto

// ChoiceCount is one (label, count) pair of a single-choice tally, in option
// declaration order.
type ChoiceCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// QuestionAnalytics is the display-ready aggregate for one question.
// Supported is false for question types the analytics view does not
// aggregate; clients render a placeholder for those.
type QuestionAnalytics struct {
	QuestionID  string        `json:"question_id"`
	Title       string        `json:"title"`
	Type        string        `json:"type"`
	Supported   bool          `json:"supported"`
	Choices     []ChoiceCount `json:"choices,omitempty"`
	TextAnswers []string      `json:"text_answers,omitempty"`
}

// AnalyticsSummaryResponse aggregates a survey's responses per question.
type AnalyticsSummaryResponse struct {
	SurveyID       string              `json:"survey_id"`
	Title          string              `json:"title"`
	TotalResponses int                 `json:"total_responses"`
	Questions      []QuestionAnalytics `json:"questions"`
}
