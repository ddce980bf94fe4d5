package handler

import (
	"quizlog/internal/domain"
	"quizlog/internal/dto"
	"quizlog/internal/service"
	"quizlog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	service   service.TagService
	validator *validation.Validator
}

// NewTagHandler creates a new TagHandler instance
func NewTagHandler(service service.TagService, validator *validation.Validator) *TagHandler {
	return &TagHandler{service: service, validator: validator}
}

// ListTags godoc
// @Summary List all tags
// @Tags tags
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /tags [get]
func (h *TagHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.service.ListTags(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(tags)
}

// CreateTag godoc
// @Summary Create a tag
// @Description Creates a tag; tag names are unique
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body dto.CreateTagRequest true "Tag to create"
// @Success 201 {object} dto.TagResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /tags [post]
func (h *TagHandler) CreateTag(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}
	if errs := h.validator.ValidateCreateTagRequest(&req); len(errs) > 0 {
		return errs
	}

	tag, err := h.service.CreateTag(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}
