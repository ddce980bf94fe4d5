package handler

import (
	"quizlog/internal/domain"
	"quizlog/internal/dto"
	"quizlog/internal/service"
	"quizlog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AttemptHandler handles attempt submission and history requests
type AttemptHandler struct {
	service   service.AttemptService
	validator *validation.Validator
}

// NewAttemptHandler creates a new AttemptHandler instance
func NewAttemptHandler(service service.AttemptService, validator *validation.Validator) *AttemptHandler {
	return &AttemptHandler{service: service, validator: validator}
}

// SubmitAttempt godoc
// @Summary Submit answers for a quiz
// @Description Scores the submitted answers against the quiz and records the attempt. Unanswered questions count as incorrect.
// @Tags attempts
// @Accept json
// @Produce json
// @Param submission body dto.SubmitAttemptRequest true "Submitted answers"
// @Success 201 {object} dto.AttemptResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /attempts [post]
func (h *AttemptHandler) SubmitAttempt(c *fiber.Ctx) error {
	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}
	if errs := h.validator.ValidateSubmitAttemptRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.SubmitAttempt(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ListAttempts godoc
// @Summary List recorded attempts
// @Description Returns attempts newest first, optionally filtered by quiz
// @Tags attempts
// @Produce json
// @Param quiz_id query string false "Filter by quiz ID"
// @Success 200 {array} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /attempts [get]
func (h *AttemptHandler) ListAttempts(c *fiber.Ctx) error {
	var quizID *string
	if q := c.Query("quiz_id"); q != "" {
		if errs := h.validator.ValidateID("quiz_id", q); len(errs) > 0 {
			return errs
		}
		quizID = &q
	}

	attempts, err := h.service.ListAttempts(c.Context(), quizID)
	if err != nil {
		return err
	}
	return c.JSON(attempts)
}
