package handler

import (
	"surveyforge/internal/builder"
	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
	"surveyforge/internal/service"
	"surveyforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SurveyHandler handles survey-related HTTP requests
type SurveyHandler struct {
	service   service.SurveyService
	validator *validation.Validator
}

// NewSurveyHandler creates a new SurveyHandler instance
func NewSurveyHandler(service service.SurveyService, validator *validation.Validator) *SurveyHandler {
	return &SurveyHandler{
		service:   service,
		validator: validator,
	}
}

// ListSurveys godoc
// @Summary List surveys
// @Description Returns all surveys, newest first
// @Tags surveys
// @Produce json
// @Success 200 {object} dto.SurveyListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /surveys [get]
func (h *SurveyHandler) ListSurveys(c *fiber.Ctx) error {
	surveys, err := h.service.ListSurveys(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(surveys)
}

// GetSurvey godoc
// @Summary Get a survey
// @Description Returns one survey with its full question sequence
// @Tags surveys
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.SurveyResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	survey, err := h.service.GetSurvey(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// CreateSurvey godoc
// @Summary Create a survey
// @Description Creates a new survey; omitted fields take their defaults
// @Tags surveys
// @Accept json
// @Produce json
// @Param request body dto.CreateSurveyRequest true "Survey to create"
// @Success 201 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c *fiber.Ctx) error {
	var req dto.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateSurveyRequest(&req); len(errs) > 0 {
		return errs
	}

	survey, err := h.service.CreateSurvey(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}

// UpdateSurvey godoc
// @Summary Update a survey
// @Description Partially updates survey metadata; absent fields are kept
// @Tags surveys
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param request body dto.UpdateSurveyRequest true "Fields to change"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id} [patch]
func (h *SurveyHandler) UpdateSurvey(c *fiber.Ctx) error {
	var req dto.UpdateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateUpdateSurveyRequest(&req); len(errs) > 0 {
		return errs
	}

	survey, err := h.service.UpdateSurvey(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// DeleteSurvey godoc
// @Summary Delete a survey
// @Description Deletes a survey and its responses; unknown ids are a no-op
// @Tags surveys
// @Param id path string true "Survey ID"
// @Success 204 "No Content"
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) DeleteSurvey(c *fiber.Ctx) error {
	if err := h.service.DeleteSurvey(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddQuestion godoc
// @Summary Add a question
// @Description Appends a question of the requested type with its default payload
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param request body dto.AddQuestionRequest true "Question type"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/questions [post]
func (h *SurveyHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.AddQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateQuestionType(req.Type); len(errs) > 0 {
		return errs
	}

	survey, err := h.service.AddQuestion(c.Context(), c.Params("id"), req.Type)
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Shallow-merges the supplied fields onto the question; a type change resets the payload
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param qid path string true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/questions/{qid} [patch]
func (h *SurveyHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	survey, err := h.service.UpdateQuestion(c.Context(), c.Params("id"), c.Params("qid"), &req)
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Removes the question; subsequent questions shift up
// @Tags questions
// @Produce json
// @Param id path string true "Survey ID"
// @Param qid path string true "Question ID"
// @Success 200 {object} dto.SurveyResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/questions/{qid} [delete]
func (h *SurveyHandler) DeleteQuestion(c *fiber.Ctx) error {
	survey, err := h.service.DeleteQuestion(c.Context(), c.Params("id"), c.Params("qid"))
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// ReorderQuestions godoc
// @Summary Reorder questions
// @Description Applies one drag gesture: the source question moves to the destination position
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param request body dto.ReorderQuestionsRequest true "Source and destination question ids"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/questions/reorder [post]
func (h *SurveyHandler) ReorderQuestions(c *fiber.Ctx) error {
	var req dto.ReorderQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateReorderRequest(&req); len(errs) > 0 {
		return errs
	}

	survey, err := h.service.ReorderQuestions(c.Context(), c.Params("id"), req.SourceID, req.DestinationID)
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// AddEntry godoc
// @Summary Add an option, row or column
// @Description Appends an entry with a positionally-numbered default label
// @Tags questions
// @Produce json
// @Param id path string true "Survey ID"
// @Param qid path string true "Question ID"
// @Param kind path string true "Entry list" Enums(options, rows, columns)
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/questions/{qid}/{kind} [post]
func (h *SurveyHandler) AddEntry(c *fiber.Ctx) error {
	kind, err := entryKind(c)
	if err != nil {
		return err
	}
	survey, err := h.service.AddEntry(c.Context(), c.Params("id"), c.Params("qid"), kind)
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// UpdateEntry godoc
// @Summary Relabel an option, row or column
// @Description Replaces the label of one entry
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Survey ID"
// @Param qid path string true "Question ID"
// @Param kind path string true "Entry list" Enums(options, rows, columns)
// @Param eid path string true "Entry ID"
// @Param request body dto.UpdateEntryRequest true "New label"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/questions/{qid}/{kind}/{eid} [patch]
func (h *SurveyHandler) UpdateEntry(c *fiber.Ctx) error {
	kind, err := entryKind(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	survey, err := h.service.UpdateEntry(c.Context(), c.Params("id"), c.Params("qid"), c.Params("eid"), kind, req.Label)
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

// DeleteEntry godoc
// @Summary Delete an option, row or column
// @Description Removes one entry; remaining labels are not renumbered
// @Tags questions
// @Produce json
// @Param id path string true "Survey ID"
// @Param qid path string true "Question ID"
// @Param kind path string true "Entry list" Enums(options, rows, columns)
// @Param eid path string true "Entry ID"
// @Success 200 {object} dto.SurveyResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/questions/{qid}/{kind}/{eid} [delete]
func (h *SurveyHandler) DeleteEntry(c *fiber.Ctx) error {
	kind, err := entryKind(c)
	if err != nil {
		return err
	}
	survey, err := h.service.DeleteEntry(c.Context(), c.Params("id"), c.Params("qid"), c.Params("eid"), kind)
	if err != nil {
		return err
	}
	return c.JSON(survey)
}

func entryKind(c *fiber.Ctx) (builder.EntryKind, error) {
	kind := builder.EntryKind(c.Params("kind"))
	if !kind.IsValid() {
		return "", domain.NewInvalidInputError("Entry kind must be options, rows or columns")
	}
	return kind, nil
}
