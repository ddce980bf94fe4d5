package domain

import (
	"time"
)

// Attempt is one scored submission of answers against a quiz. It is
// immutable once recorded; repeat attempts create new records.
type Attempt struct {
	ID             string
	QuizID         string
	Score          int // count of correctly answered questions
	TotalQuestions int // question count of the quiz at submission time
	StartedAt      time.Time
	CompletedAt    time.Time
	CreatedAt      time.Time
}

// NewAttempt creates a new Attempt instance
func NewAttempt(quizID string, score, totalQuestions int, completedAt time.Time) *Attempt {
	return &Attempt{
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: totalQuestions,
		StartedAt:      completedAt,
		CompletedAt:    completedAt,
		CreatedAt:      completedAt,
	}
}

// Validate validates the attempt invariants
func (a *Attempt) Validate() error {
	var errs ValidationErrors
	if a.QuizID == "" {
		errs = append(errs, NewMissingFieldError("quiz_id"))
	}
	if a.Score < 0 || a.Score > a.TotalQuestions {
		errs = append(errs, NewOutOfRangeError("score", a.Score, 0, a.TotalQuestions))
	}
	if a.TotalQuestions < 0 {
		errs = append(errs, NewOutOfRangeError("total_questions", a.TotalQuestions, 0, int(^uint(0)>>1)))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttemptAnswer is the per-question record of an attempt: what the user
// submitted and whether it matched.
type AttemptAnswer struct {
	ID         string
	AttemptID  string
	QuestionID string
	UserAnswer string
	IsCorrect  bool
}

// CategoryStat is the per-tag correctness aggregate over all recorded
// answers to questions carrying that tag.
type CategoryStat struct {
	TagName        string
	CorrectRate    float64 // in [0, 1]
	TotalQuestions int     // distinct answered questions under the tag
}

// Statistics is the dashboard aggregate over the full attempt history.
type Statistics struct {
	TotalAttempts  int
	AverageScore   float64 // mean of score/totalQuestions*100, 0 with no attempts
	CategoryStats  []CategoryStat
	RecentAttempts []Attempt
}
