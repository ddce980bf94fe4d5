package domain

import (
	"context"
)

// QuizRepository provides read/write access to quizzes and their questions.
type QuizRepository interface {
	// GetQuizByID returns the quiz with its questions in quiz order and
	// its tags, or nil when no such quiz exists.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	GetAllQuizzes(ctx context.Context) ([]*Quiz, error)
	SaveQuiz(ctx context.Context, quiz *Quiz, tagIDs []string) error
	UpdateQuiz(ctx context.Context, quiz *Quiz, tagIDs []string) error
	// DeleteQuiz soft-deletes the quiz and its questions. Recorded
	// attempts are left untouched.
	DeleteQuiz(ctx context.Context, id string) error

	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	GetQuestionsByTag(ctx context.Context, tagID string) ([]*Question, error)
	SaveQuestion(ctx context.Context, question *Question, tagIDs []string) error
	UpdateQuestion(ctx context.Context, question *Question, tagIDs []string) error
	DeleteQuestion(ctx context.Context, id string) error
}

// TagRepository provides access to tags.
type TagRepository interface {
	// SaveTag persists a new tag. Name uniqueness violations surface as
	// a duplicate-tag domain error.
	SaveTag(ctx context.Context, tag *Tag) error
	GetTagByName(ctx context.Context, name string) (*Tag, error)
	GetAllTags(ctx context.Context) ([]*Tag, error)
}

// AttemptRepository persists and aggregates attempt history. Attempts
// are append-only.
type AttemptRepository interface {
	// CreateAttempt persists the attempt row and its per-question
	// answers. Callers run it inside a transaction so the write is
	// all-or-nothing.
	CreateAttempt(ctx context.Context, attempt *Attempt, answers []AttemptAnswer) error
	GetAttemptByID(ctx context.Context, id string) (*Attempt, error)
	// ListAttempts returns attempts ordered by completion time
	// descending, optionally filtered by quiz and capped at limit
	// (limit <= 0 means no cap).
	ListAttempts(ctx context.Context, quizID *string, limit int) ([]*Attempt, error)

	CountAttempts(ctx context.Context) (int, error)
	// AverageScorePercent returns the mean of score/total_questions*100
	// over all attempts, or 0 when there are none.
	AverageScorePercent(ctx context.Context) (float64, error)
	// GetCategoryStats aggregates answer correctness per tag. Tags with
	// no answered questions are omitted.
	GetCategoryStats(ctx context.Context) ([]CategoryStat, error)
}

// TransactionManager runs a function within a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
