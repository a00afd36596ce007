package surveygen

import (
	"context"
	"errors"
	"testing"
	"time"

	"surveyforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// fakeModel returns a canned response without calling any real LLM.
type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.response}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return f.response, f.err
}

func TestGenerateSurvey_ParsesResponse(t *testing.T) {
	model := &fakeModel{response: `{
		"title": "Remote Work Survey",
		"description": "How the team experiences remote work",
		"questions": [
			{"type": "single-choice", "title": "Where do you work?", "isRequired": true,
			 "options": [{"label": "Home"}, {"label": "Office"}]},
			{"type": "rating", "title": "Rate your setup", "scale": 5},
			{"type": "paragraph", "title": "Anything to add?"}
		]
	}`}
	generator := NewWithModel(model, time.Second, zap.NewNop())

	generated, err := generator.GenerateSurvey(context.Background(), "remote work")
	require.NoError(t, err)
	assert.Equal(t, "Remote Work Survey", generated.Title)
	require.Len(t, generated.Questions, 3)
	assert.Equal(t, domain.SingleChoice, generated.Questions[0].Type)
	assert.True(t, generated.Questions[0].IsRequired)
	require.Len(t, generated.Questions[0].Options, 2)
	assert.Equal(t, "Home", generated.Questions[0].Options[0].Label)
	assert.Equal(t, 5, generated.Questions[1].Scale)
}

func TestGenerateSurvey_ExtractsJSONFromProse(t *testing.T) {
	model := &fakeModel{response: "Sure! Here is your survey:\n```json\n" +
		`{"title": "Wrapped", "description": "", "questions": []}` + "\n```\nLet me know if you need changes."}
	generator := NewWithModel(model, time.Second, zap.NewNop())

	generated, err := generator.GenerateSurvey(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "Wrapped", generated.Title)
}

func TestGenerateSurvey_SkipsInvalidQuestions(t *testing.T) {
	model := &fakeModel{response: `{
		"title": "Mixed Quality",
		"questions": [
			{"type": "paragraph", "title": "Valid"},
			{"type": "slider", "title": "Unknown type"},
			{"type": "rating", "title": ""}
		]
	}`}
	generator := NewWithModel(model, time.Second, zap.NewNop())

	generated, err := generator.GenerateSurvey(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, generated.Questions, 1)
	assert.Equal(t, "Valid", generated.Questions[0].Title)
}

func TestGenerateSurvey_NoJSONInResponse(t *testing.T) {
	model := &fakeModel{response: "I cannot help with that."}
	generator := NewWithModel(model, time.Second, zap.NewNop())

	_, err := generator.GenerateSurvey(context.Background(), "anything")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrGenerationFailed, domainErr.Code)
}

func TestGenerateSurvey_ModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	generator := NewWithModel(model, time.Second, zap.NewNop())

	_, err := generator.GenerateSurvey(context.Background(), "anything")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrGenerationFailed, domainErr.Code)
}

func TestGenerateSurvey_NoCredentialConfigured(t *testing.T) {
	generator := NewWithModel(nil, time.Second, zap.NewNop())

	_, err := generator.GenerateSurvey(context.Background(), "anything")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrGenerationFailed, domainErr.Code)
}
