package validation

import (
	"quizlog/internal/domain"
	"quizlog/internal/dto"
	"regexp"
	"strings"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID validates a ULID path or body parameter
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

// ValidateSubmitAttemptRequest validates a quiz submission. Unanswered
// questions are legal; answers only need a well-formed question ID.
func (v *Validator) ValidateSubmitAttemptRequest(req *dto.SubmitAttemptRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, v.ValidateID("quiz_id", req.QuizID)...)

	for _, ans := range req.Answers {
		if idErrors := v.ValidateID("answers.question_id", ans.QuestionID); len(idErrors) > 0 {
			errors = append(errors, idErrors...)
		}
		if len(ans.UserAnswer) > 2000 {
			errors = append(errors, domain.NewOutOfRangeError("answers.user_answer", len(ans.UserAnswer), 0, 2000))
		}
	}
	return errors
}

// ValidateCreateQuizRequest validates quiz creation input
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	} else if len(req.Title) > 200 {
		errors = append(errors, domain.NewOutOfRangeError("title", len(req.Title), 1, 200))
	}
	for _, tagID := range req.TagIDs {
		errors = append(errors, v.ValidateID("tag_ids", tagID)...)
	}
	return errors
}

// ValidateCreateQuestionRequest validates question creation input
func (v *Validator) ValidateCreateQuestionRequest(req *dto.CreateQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	}
	if req.CorrectAnswer == "" {
		errors = append(errors, domain.NewMissingFieldError("correct_answer"))
	}
	if !domain.QuestionType(req.Type).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}
	if req.Difficulty != "" && !domain.Difficulty(req.Difficulty).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}
	for _, tagID := range req.TagIDs {
		errors = append(errors, v.ValidateID("tag_ids", tagID)...)
	}
	return errors
}

// ValidateCreateTagRequest validates tag creation input
func (v *Validator) ValidateCreateTagRequest(req *dto.CreateTagRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(req.Name) > 100 {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 1, 100))
	}
	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
