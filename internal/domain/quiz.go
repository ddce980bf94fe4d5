package domain

import (
	"time"
)

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

// IsValid reports whether t is a known question type.
func (t QuestionType) IsValid() bool {
	switch t {
	case MultipleChoice, TrueFalse, ShortAnswer:
		return true
	}
	return false
}

// Difficulty is an informational label on a question. It plays no role
// in scoring.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is a known difficulty level.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Tag is a named label attached to quizzes and questions, used for
// statistics grouping. Names are unique.
type Tag struct {
	ID   string
	Name string
}

// Validate validates the tag
func (t *Tag) Validate() error {
	if t.Name == "" {
		return ValidationErrors{NewMissingFieldError("name")}
	}
	return nil
}

// Quiz represents a quiz with its ordered questions
type Quiz struct {
	ID          string
	Title       string
	Description *string
	Tags        []Tag
	Questions   []Question
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(title string, description *string) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return ValidationErrors{NewMissingFieldError("title")}
	}
	return nil
}

// Question belongs to exactly one quiz. Options are only meaningful for
// multiple-choice questions; CorrectAnswer holds the literal expected
// answer string for every type ("true"/"false" for true-false).
type Question struct {
	ID            string
	QuizID        string
	Type          QuestionType
	Content       string
	Options       []string
	CorrectAnswer string
	Explanation   *string
	Difficulty    Difficulty
	Tags          []Tag
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(quizID string, qType QuestionType, content, correctAnswer string) *Question {
	now := time.Now()
	return &Question{
		QuizID:        quizID,
		Type:          qType,
		Content:       content,
		CorrectAnswer: correctAnswer,
		Difficulty:    DifficultyEasy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if q.QuizID == "" {
		errs = append(errs, NewMissingFieldError("quiz_id"))
	}
	if q.Content == "" {
		errs = append(errs, NewMissingFieldError("content"))
	}
	if q.CorrectAnswer == "" {
		errs = append(errs, NewMissingFieldError("correct_answer"))
	}
	if !q.Type.IsValid() {
		errs = append(errs, NewInvalidFormatError("type", string(q.Type)))
	}
	if !q.Difficulty.IsValid() {
		errs = append(errs, NewInvalidFormatError("difficulty", string(q.Difficulty)))
	}
	if q.Type == MultipleChoice && len(q.Options) < 2 {
		errs = append(errs, NewOutOfRangeError("options", len(q.Options), 2, 10))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsCorrectAnswer decides whether a submitted answer is correct.
// Comparison is an exact, case-sensitive string match for every
// question type; no trimming or normalization is applied. An empty
// submission is always incorrect, never an error.
func (q *Question) IsCorrectAnswer(submitted string) bool {
	if submitted == "" {
		return false
	}
	return submitted == q.CorrectAnswer
}
