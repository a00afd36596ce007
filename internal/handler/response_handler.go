package handler

import (
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/service"
	"surveyforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ResponseHandler handles submitted-response HTTP requests
type ResponseHandler struct {
	service   service.ResponseService
	validator *validation.Validator
}

// NewResponseHandler creates a new ResponseHandler instance
func NewResponseHandler(service service.ResponseService, validator *validation.Validator) *ResponseHandler {
	return &ResponseHandler{
		service:   service,
		validator: validator,
	}
}

// ListResponses godoc
// @Summary List responses
// @Description Returns submitted responses, optionally filtered to one survey
// @Tags responses
// @Produce json
// @Param survey_id query string false "Survey ID filter"
// @Success 200 {object} dto.ResponseListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /responses [get]
func (h *ResponseHandler) ListResponses(c *fiber.Ctx) error {
	responses, err := h.service.ListResponses(c.Context(), c.Query("survey_id"))
	if err != nil {
		return err
	}
	return c.JSON(responses)
}

// SubmitResponse godoc
// @Summary Submit a response
// @Description Records one respondent's answers to a survey
// @Tags responses
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param request body dto.SubmitResponseRequest true "Answers keyed by question id"
// @Success 201 {object} dto.ResponseRecord
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/responses [post]
func (h *ResponseHandler) SubmitResponse(c *fiber.Ctx) error {
	var req dto.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSubmitResponseRequest(&req); len(errs) > 0 {
		return errs
	}

	response, err := h.service.SubmitResponse(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}
