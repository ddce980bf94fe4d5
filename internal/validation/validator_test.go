package validation

import (
	"strings"
	"testing"

	"quizlog/internal/domain"
	"quizlog/internal/dto"

	"github.com/stretchr/testify/assert"
)

const validID = "01HZ8S7T4NQWKRTXVASDFGHJKM"

func TestValidateID(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid ULID", validID, false},
		{"empty", "", true},
		{"too short", "01HZ8S7T4N", true},
		{"lowercase", strings.ToLower(validID), true},
		{"contains excluded letter", "01HZ8S7T4N1QWERTYUASDFGHIL", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateID("id", tt.id)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateSubmitAttemptRequest(t *testing.T) {
	v := NewValidator()

	// Unanswered questions are fine; an empty answer list is valid.
	errs := v.ValidateSubmitAttemptRequest(&dto.SubmitAttemptRequest{QuizID: validID})
	assert.Empty(t, errs)

	errs = v.ValidateSubmitAttemptRequest(&dto.SubmitAttemptRequest{
		QuizID: validID,
		Answers: []dto.SubmittedAnswer{
			{QuestionID: "not-a-ulid", UserAnswer: "B"},
		},
	})
	assert.NotEmpty(t, errs)

	errs = v.ValidateSubmitAttemptRequest(&dto.SubmitAttemptRequest{QuizID: ""})
	assert.NotEmpty(t, errs)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)
}

func TestValidateCreateQuizRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateCreateQuizRequest(&dto.CreateQuizRequest{Title: "Capitals"}))

	errs := v.ValidateCreateQuizRequest(&dto.CreateQuizRequest{Title: "   "})
	assert.NotEmpty(t, errs)

	errs = v.ValidateCreateQuizRequest(&dto.CreateQuizRequest{
		Title:  "Capitals",
		TagIDs: []string{"bogus"},
	})
	assert.NotEmpty(t, errs)
}

func TestValidateCreateQuestionRequest(t *testing.T) {
	v := NewValidator()

	valid := &dto.CreateQuestionRequest{
		Type:          "multiple_choice",
		Content:       "Pick B",
		Options:       []string{"A", "B"},
		CorrectAnswer: "B",
	}
	assert.Empty(t, v.ValidateCreateQuestionRequest(valid))

	errs := v.ValidateCreateQuestionRequest(&dto.CreateQuestionRequest{
		Type:          "essay",
		Content:       "Write something",
		CorrectAnswer: "x",
	})
	assert.NotEmpty(t, errs)

	errs = v.ValidateCreateQuestionRequest(&dto.CreateQuestionRequest{
		Type:    "short_answer",
		Content: "Capital of France",
	})
	assert.NotEmpty(t, errs)
	assert.Equal(t, "correct_answer", errs[0].Field)
}

func TestValidateCreateTagRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateCreateTagRequest(&dto.CreateTagRequest{Name: "geography"}))
	assert.NotEmpty(t, v.ValidateCreateTagRequest(&dto.CreateTagRequest{Name: ""}))
	assert.NotEmpty(t, v.ValidateCreateTagRequest(&dto.CreateTagRequest{Name: strings.Repeat("x", 101)}))
}
