package surveygen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"surveyforge/internal/config"
	"surveyforge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

const surveyPromptTemplate = `You are an expert survey designer. Generate a detailed survey based on the following topic: "%s". Please include a variety of relevant question types.

Respond with ONLY a single JSON object in the following format:
{
  "title": "A concise and engaging title for the survey.",
  "description": "A brief description of the survey's purpose.",
  "questions": [
    {
      "type": "one of: single-choice, multiple-choice, text-input, paragraph, dropdown, rating, likert, date, file-upload, matrix",
      "title": "The main text of the question.",
      "description": "Optional additional details or instructions for the question.",
      "isRequired": false,
      "options": [{"label": "Option text"}],
      "scale": 5,
      "statements": ["Statement to be rated"],
      "choices": ["Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"],
      "rows": [{"label": "Row label"}],
      "columns": [{"label": "Column label"}]
    }
  ]
}

Rules:
1. "options" only applies to single-choice, multiple-choice and dropdown questions
2. "scale" only applies to rating questions and must be 3, 5, 7 or 10
3. "statements" and "choices" only apply to likert questions
4. "rows" and "columns" only apply to matrix questions
5. text-input, paragraph, date and file-upload questions carry no extra fields`

// GeminiSurveyGenerator implements domain.SurveyGenerationService using the
// LangchainGo Google AI client.
type GeminiSurveyGenerator struct {
	llm     llms.Model
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiSurveyGenerator creates the generator from configuration. When no
// API key is configured the generator is still constructed but every call
// fails with a generation error, mirroring the rest of the application
// staying usable without AI features.
func NewGeminiSurveyGenerator(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (domain.SurveyGenerationService, error) {
	if cfg.APIKey == "" {
		logger.Warn("Gemini API key not configured, AI survey generation is disabled")
		return &GeminiSurveyGenerator{timeout: cfg.Timeout, logger: logger}, nil
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	logger.Info("GeminiSurveyGenerator initialized", zap.String("model", cfg.Model))
	return &GeminiSurveyGenerator{llm: llm, timeout: cfg.Timeout, logger: logger}, nil
}

// NewWithModel builds a generator around an existing model; used by tests.
func NewWithModel(llm llms.Model, timeout time.Duration, logger *zap.Logger) domain.SurveyGenerationService {
	return &GeminiSurveyGenerator{llm: llm, timeout: timeout, logger: logger}
}

// GenerateSurvey performs one request-response generation call. There is no
// streaming and no retry; any failure is terminal for the call and the
// caller decides whether to re-invoke.
func (g *GeminiSurveyGenerator) GenerateSurvey(ctx context.Context, prompt string) (*domain.GeneratedSurvey, error) {
	if g.llm == nil {
		return nil, domain.NewGenerationError(errors.New("no API credential configured"))
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	fullPrompt := fmt.Sprintf(surveyPromptTemplate, prompt)
	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, fullPrompt,
		llms.WithTemperature(0.2),
		llms.WithJSONMode(),
	)
	if err != nil {
		g.logger.Error("LLM survey generation call failed", zap.Error(err))
		return nil, domain.NewGenerationError(err)
	}

	g.logger.Debug("Raw LLM response received", zap.String("raw_response", raw))

	cleaned := strings.TrimSpace(raw)
	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		g.logger.Error("No JSON object found in LLM response", zap.String("response", cleaned))
		return nil, domain.NewGenerationError(fmt.Errorf("no JSON object found in LLM response"))
	}

	var generated domain.GeneratedSurvey
	if err := json.Unmarshal([]byte(cleaned[jsonStart:jsonEnd+1]), &generated); err != nil {
		g.logger.Error("Failed to unmarshal LLM JSON response", zap.Error(err))
		return nil, domain.NewGenerationError(fmt.Errorf("failed to parse LLM response: %w", err))
	}

	kept := generated.Questions[:0]
	for _, q := range generated.Questions {
		if !q.Type.IsValid() || q.Title == "" {
			g.logger.Warn("LLM generated incomplete question, skipping",
				zap.String("type", string(q.Type)),
				zap.String("title", q.Title))
			continue
		}
		kept = append(kept, q)
	}
	generated.Questions = kept

	g.logger.Info("Successfully parsed LLM survey response",
		zap.String("title", generated.Title),
		zap.Int("num_questions", len(generated.Questions)))
	return &generated, nil
}

// Static assertion to ensure GeminiSurveyGenerator implements SurveyGenerationService
var _ domain.SurveyGenerationService = (*GeminiSurveyGenerator)(nil)
