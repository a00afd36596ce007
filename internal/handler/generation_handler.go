package handler

import (
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/service"
	"surveyforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenerationHandler handles AI survey generation HTTP requests
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService, validator *validation.Validator) *GenerationHandler {
	return &GenerationHandler{
		service:   service,
		validator: validator,
	}
}

// GenerateSurvey godoc
// @Summary Generate a survey draft
// @Description Turns a free-text topic into a persisted draft survey
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateSurveyRequest true "Topic prompt"
// @Success 201 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /generate [post]
func (h *GenerationHandler) GenerateSurvey(c *fiber.Ctx) error {
	var req dto.GenerateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	survey, err := h.service.GenerateSurvey(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}
