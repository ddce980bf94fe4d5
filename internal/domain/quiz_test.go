package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionIsCorrectAnswer(t *testing.T) {
	tests := []struct {
		name      string
		qType     QuestionType
		correct   string
		submitted string
		want      bool
	}{
		{"multiple choice exact match", MultipleChoice, "B", "B", true},
		{"multiple choice wrong option", MultipleChoice, "B", "C", false},
		{"multiple choice is case sensitive", MultipleChoice, "B", "b", false},
		{"true false match", TrueFalse, "true", "true", true},
		{"true false mismatch", TrueFalse, "true", "false", false},
		{"short answer exact match", ShortAnswer, "Paris", "Paris", true},
		{"short answer is case sensitive", ShortAnswer, "Paris", "paris", false},
		{"short answer is not trimmed", ShortAnswer, "Paris", " Paris", false},
		{"empty submission is incorrect", ShortAnswer, "Paris", "", false},
		{"empty submission never matches empty-ish answers", TrueFalse, "false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuestion("quiz1", tt.qType, "content", tt.correct)
			assert.Equal(t, tt.want, q.IsCorrectAnswer(tt.submitted))
		})
	}
}

func TestQuestionValidate(t *testing.T) {
	q := NewQuestion("quiz1", ShortAnswer, "What is the capital of France?", "Paris")
	assert.NoError(t, q.Validate())

	q = NewQuestion("", ShortAnswer, "", "")
	err := q.Validate()
	assert.Error(t, err)
	errs, ok := err.(ValidationErrors)
	assert.True(t, ok)
	assert.Len(t, errs, 3)

	// Multiple choice requires at least two options
	mc := NewQuestion("quiz1", MultipleChoice, "Pick one", "B")
	mc.Options = []string{"A"}
	assert.Error(t, mc.Validate())
	mc.Options = []string{"A", "B"}
	assert.NoError(t, mc.Validate())

	bad := NewQuestion("quiz1", QuestionType("essay"), "content", "answer")
	assert.Error(t, bad.Validate())
}

func TestQuizValidate(t *testing.T) {
	quiz := NewQuiz("Geography", nil)
	assert.NoError(t, quiz.Validate())

	quiz = NewQuiz("", nil)
	assert.Error(t, quiz.Validate())
}

func TestAttemptValidate(t *testing.T) {
	attempt := &Attempt{QuizID: "quiz1", Score: 2, TotalQuestions: 3}
	assert.NoError(t, attempt.Validate())

	attempt = &Attempt{QuizID: "quiz1", Score: 4, TotalQuestions: 3}
	assert.Error(t, attempt.Validate(), "score must not exceed total questions")

	attempt = &Attempt{QuizID: "", Score: 0, TotalQuestions: 0}
	assert.Error(t, attempt.Validate())
}
