package handler

import (
	"quizlog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatisticsHandler serves the aggregated attempt statistics
type StatisticsHandler struct {
	service service.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler instance
func NewStatisticsHandler(service service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetStatistics godoc
// @Summary Get attempt statistics
// @Description Returns the total attempt count, average score percentage, per-tag correctness rates, and recent attempts
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
