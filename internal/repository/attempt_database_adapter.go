package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quizlog/internal/domain"
	"quizlog/internal/repository/models"
	"quizlog/internal/util"

	"github.com/jmoiron/sqlx"
)

// AttemptDatabaseAdapter implements domain.AttemptRepository using
// sqlx.DB. Attempt rows are append-only: there is no update or delete
// path, which is what keeps recorded history stable when quizzes
// change or disappear.
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAttemptDatabaseAdapter creates a new instance of AttemptDatabaseAdapter
func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

func toDomainAttempt(m *models.Attempt) *domain.Attempt {
	if m == nil {
		return nil
	}
	return &domain.Attempt{
		ID:             m.ID,
		QuizID:         m.QuizID,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		StartedAt:      m.StartedAt,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
	}
}

const attemptColumns = `ID, QUIZ_ID, SCORE, TOTAL_QUESTIONS, STARTED_AT, COMPLETED_AT, CREATED_AT`

// CreateAttempt implements domain.AttemptRepository. It inserts the
// attempt row and one answer row per question. Run it through the
// transaction manager so either everything is written or nothing is.
func (a *AttemptDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.Attempt, answers []domain.AttemptAnswer) error {
	if attempt == nil {
		return fmt.Errorf("cannot create nil attempt")
	}
	exec := GetExecutor(ctx, a.db)

	attempt.ID = util.NewULID()
	if attempt.CompletedAt.IsZero() {
		attempt.CompletedAt = time.Now()
	}
	if attempt.StartedAt.IsZero() {
		attempt.StartedAt = attempt.CompletedAt
	}
	attempt.CreatedAt = time.Now()

	query := `INSERT INTO attempts (` + attemptColumns + `) VALUES (:1, :2, :3, :4, :5, :6, :7)`
	_, err := exec.ExecContext(ctx, query,
		attempt.ID,
		attempt.QuizID,
		attempt.Score,
		attempt.TotalQuestions,
		attempt.StartedAt,
		attempt.CompletedAt,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	answerQuery := `INSERT INTO answers (ID, ATTEMPT_ID, QUESTION_ID, USER_ANSWER, IS_CORRECT) VALUES (:1, :2, :3, :4, :5)`
	for i := range answers {
		answers[i].ID = util.NewULID()
		answers[i].AttemptID = attempt.ID
		isCorrect := 0
		if answers[i].IsCorrect {
			isCorrect = 1
		}
		_, err := exec.ExecContext(ctx, answerQuery,
			answers[i].ID,
			attempt.ID,
			answers[i].QuestionID,
			answers[i].UserAnswer,
			isCorrect,
		)
		if err != nil {
			return fmt.Errorf("failed to create answer for question %s: %w", answers[i].QuestionID, err)
		}
	}
	return nil
}

// GetAttemptByID implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) GetAttemptByID(ctx context.Context, id string) (*domain.Attempt, error) {
	exec := GetExecutor(ctx, a.db)

	var modelAttempt models.Attempt
	query := `SELECT ` + attemptColumns + ` FROM attempts WHERE ID = :1`
	err := exec.GetContext(ctx, &modelAttempt, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt by ID %s: %w", id, err)
	}
	return toDomainAttempt(&modelAttempt), nil
}

// ListAttempts implements domain.AttemptRepository. Attempts are
// ordered by completion time descending.
func (a *AttemptDatabaseAdapter) ListAttempts(ctx context.Context, quizID *string, limit int) ([]*domain.Attempt, error) {
	exec := GetExecutor(ctx, a.db)

	var modelAttempts []models.Attempt
	var err error
	switch {
	case quizID != nil && limit > 0:
		query := `SELECT ` + attemptColumns + ` FROM attempts WHERE QUIZ_ID = :1 ORDER BY COMPLETED_AT DESC FETCH FIRST :2 ROWS ONLY`
		err = exec.SelectContext(ctx, &modelAttempts, query, *quizID, limit)
	case quizID != nil:
		query := `SELECT ` + attemptColumns + ` FROM attempts WHERE QUIZ_ID = :1 ORDER BY COMPLETED_AT DESC`
		err = exec.SelectContext(ctx, &modelAttempts, query, *quizID)
	case limit > 0:
		query := `SELECT ` + attemptColumns + ` FROM attempts ORDER BY COMPLETED_AT DESC FETCH FIRST :1 ROWS ONLY`
		err = exec.SelectContext(ctx, &modelAttempts, query, limit)
	default:
		query := `SELECT ` + attemptColumns + ` FROM attempts ORDER BY COMPLETED_AT DESC`
		err = exec.SelectContext(ctx, &modelAttempts, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	attempts := make([]*domain.Attempt, 0, len(modelAttempts))
	for i := range modelAttempts {
		attempts = append(attempts, toDomainAttempt(&modelAttempts[i]))
	}
	return attempts, nil
}

// CountAttempts implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) CountAttempts(ctx context.Context) (int, error) {
	exec := GetExecutor(ctx, a.db)

	var count int
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM attempts`); err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

// AverageScorePercent implements domain.AttemptRepository. The average
// is over per-attempt percentages; NULL (no attempts) collapses to 0 so
// an empty history never divides by zero.
func (a *AttemptDatabaseAdapter) AverageScorePercent(ctx context.Context) (float64, error) {
	exec := GetExecutor(ctx, a.db)

	query := `SELECT NVL(AVG(SCORE / TOTAL_QUESTIONS * 100), 0) FROM attempts WHERE TOTAL_QUESTIONS > 0`
	var avg float64
	if err := exec.GetContext(ctx, &avg, query); err != nil {
		return 0, fmt.Errorf("failed to calculate average score: %w", err)
	}
	return avg, nil
}

// GetCategoryStats implements domain.AttemptRepository. Only tags with
// at least one recorded answer appear; the rate is the share of correct
// answers among all recorded answers to questions carrying the tag.
func (a *AttemptDatabaseAdapter) GetCategoryStats(ctx context.Context) ([]domain.CategoryStat, error) {
	exec := GetExecutor(ctx, a.db)

	query := `SELECT t.NAME TAG_NAME,
		AVG(ans.IS_CORRECT) CORRECT_RATE,
		COUNT(DISTINCT ans.QUESTION_ID) TOTAL_QUESTIONS
	FROM tags t
	JOIN question_tags qt ON qt.TAG_ID = t.ID
	JOIN answers ans ON ans.QUESTION_ID = qt.QUESTION_ID
	WHERE t.DELETED_AT IS NULL
	GROUP BY t.NAME
	ORDER BY t.NAME`

	var rows []models.CategoryStatRow
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}

	stats := make([]domain.CategoryStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.CategoryStat{
			TagName:        row.TagName,
			CorrectRate:    row.CorrectRate,
			TotalQuestions: row.TotalQuestions,
		})
	}
	return stats, nil
}
