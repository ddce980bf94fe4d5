package handler

import (
	"quizlog/internal/domain"
	"quizlog/internal/dto"
	"quizlog/internal/service"
	"quizlog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService     service.QuizService
	questionService service.QuestionService
	validator       *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(
	quizService service.QuizService,
	questionService service.QuestionService,
	validator *validation.Validator,
) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		questionService: questionService,
		validator:       validator,
	}
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Description Returns summaries of all quizzes with their tags and question counts
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.quizService.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz by ID
// @Description Returns one quiz with its questions and tags
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	quiz, err := h.quizService.GetQuiz(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz with an optional tag set
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz to create"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}
	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.quizService.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Description Updates the supplied fields of a quiz; omitted fields are unchanged
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param quiz body dto.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}

	quiz, err := h.quizService.UpdateQuiz(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Soft-deletes a quiz and its questions; recorded attempts are kept
// @Tags quizzes
// @Param id path string true "Quiz ID"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	if err := h.quizService.DeleteQuiz(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateQuestion godoc
// @Summary Add a question to a quiz
// @Description Creates a question under an existing quiz
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param question body dto.CreateQuestionRequest true "Question to create"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/questions [post]
func (h *QuizHandler) CreateQuestion(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateID("id", quizID); len(errs) > 0 {
		return errs
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}
	if errs := h.validator.ValidateCreateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	question, err := h.questionService.CreateQuestion(c.Context(), quizID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Updates the supplied fields of a question; omitted fields are unchanged
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/{id} [put]
func (h *QuizHandler) UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}

	question, err := h.questionService.UpdateQuestion(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Soft-deletes a question; recorded answers are kept
// @Tags questions
// @Param id path string true "Question ID"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuizHandler) DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	if err := h.questionService.DeleteQuestion(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
