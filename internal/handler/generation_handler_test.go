package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/middleware"
	"surveyforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerationService implements service.GenerationService.
type stubGenerationService struct {
	generate func(ctx context.Context, req *dto.GenerateSurveyRequest) (*dto.SurveyResponse, error)
}

func (s *stubGenerationService) GenerateSurvey(ctx context.Context, req *dto.GenerateSurveyRequest) (*dto.SurveyResponse, error) {
	return s.generate(ctx, req)
}

func newGenerationApp(svc *stubGenerationService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewGenerationHandler(svc, validation.NewValidator())
	app.Post("/api/generate", h.GenerateSurvey)
	return app
}

func TestGenerationHandler_GenerateSurvey(t *testing.T) {
	app := newGenerationApp(&stubGenerationService{
		generate: func(ctx context.Context, req *dto.GenerateSurveyRequest) (*dto.SurveyResponse, error) {
			assert.Equal(t, "team lunch preferences", req.Prompt)
			return &dto.SurveyResponse{ID: "s1", Title: "Team Lunch Preferences", Status: "draft"}, nil
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate",
		dto.GenerateSurveyRequest{Prompt: "team lunch preferences"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.SurveyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "draft", body.Status)
}

func TestGenerationHandler_EmptyPrompt(t *testing.T) {
	app := newGenerationApp(&stubGenerationService{
		generate: func(ctx context.Context, req *dto.GenerateSurveyRequest) (*dto.SurveyResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate", dto.GenerateSurveyRequest{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerationHandler_ServiceUnavailable(t *testing.T) {
	app := newGenerationApp(&stubGenerationService{
		generate: func(ctx context.Context, req *dto.GenerateSurveyRequest) (*dto.SurveyResponse, error) {
			return nil, domain.NewGenerationError(assert.AnError)
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/generate",
		dto.GenerateSurveyRequest{Prompt: "anything"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.ErrGenerationFailed), body.Code)
}
