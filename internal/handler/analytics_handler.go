package handler

import (
	"surveyforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	service service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetSurveySummary godoc
// @Summary Get survey analytics
// @Description Aggregates a survey's responses into per-question counts
// @Tags analytics
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} dto.AnalyticsSummaryResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /surveys/{id}/analytics [get]
func (h *AnalyticsHandler) GetSurveySummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSurveySummary(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
