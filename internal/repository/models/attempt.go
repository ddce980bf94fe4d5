package models

import (
	"time"
)

// Attempt represents an attempt row. Attempt rows are append-only and
// never updated or soft-deleted; they survive quiz deletion.
type Attempt struct {
	ID             string    `db:"ID"` // ULID
	QuizID         string    `db:"QUIZ_ID"`
	Score          int       `db:"SCORE"` // count of correct answers
	TotalQuestions int       `db:"TOTAL_QUESTIONS"`
	StartedAt      time.Time `db:"STARTED_AT"`
	CompletedAt    time.Time `db:"COMPLETED_AT"`
	CreatedAt      time.Time `db:"CREATED_AT"`
}

// Answer represents one scored answer row of an attempt.
type Answer struct {
	ID         string `db:"ID"` // ULID
	AttemptID  string `db:"ATTEMPT_ID"`
	QuestionID string `db:"QUESTION_ID"`
	UserAnswer string `db:"USER_ANSWER"`
	IsCorrect  int    `db:"IS_CORRECT"` // NUMBER(1): 1 correct, 0 incorrect
}

// CategoryStatRow is the scan target of the per-tag aggregate query.
type CategoryStatRow struct {
	TagName        string  `db:"TAG_NAME"`
	CorrectRate    float64 `db:"CORRECT_RATE"`
	TotalQuestions int     `db:"TOTAL_QUESTIONS"`
}
