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

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

func toDomainTag(m *models.Tag) domain.Tag {
	return domain.Tag{ID: m.ID, Name: m.Name}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:            m.ID,
		QuizID:        m.QuizID,
		Type:          domain.QuestionType(m.QuestionType),
		Content:       m.Content,
		Options:       m.Options,
		CorrectAnswer: m.CorrectAnswer,
		Explanation:   util.NullStringToPtr(m.Explanation),
		Difficulty:    domain.Difficulty(m.Difficulty),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: util.NullStringToPtr(m.Description),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

const quizColumns = `ID, TITLE, DESCRIPTION, CREATED_AT, UPDATED_AT, DELETED_AT`

const questionColumns = `ID, QUIZ_ID, QUESTION_TYPE, CONTENT, OPTIONS, CORRECT_ANSWER, EXPLANATION, DIFFICULTY, CREATED_AT, UPDATED_AT, DELETED_AT`

// GetQuizByID implements domain.QuizRepository. The returned quiz
// carries its questions in quiz order and its tags; nil when no such
// quiz exists.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuiz models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE ID = :1 AND DELETED_AT IS NULL`
	err := exec.GetContext(ctx, &modelQuiz, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}

	quiz := toDomainQuiz(&modelQuiz)

	questions, err := a.getQuestionsByQuizID(ctx, exec, id)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions

	tags, err := a.getTagsForQuiz(ctx, exec, id)
	if err != nil {
		return nil, err
	}
	quiz.Tags = tags

	return quiz, nil
}

// getQuestionsByQuizID loads the quiz's questions in quiz order (ULIDs
// sort by creation time) together with their tags.
func (a *QuizDatabaseAdapter) getQuestionsByQuizID(ctx context.Context, exec DBTX, quizID string) ([]domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE QUIZ_ID = :1 AND DELETED_AT IS NULL ORDER BY ID`
	if err := exec.SelectContext(ctx, &modelQuestions, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", quizID, err)
	}

	tagsByQuestion, err := a.getTagsForQuizQuestions(ctx, exec, quizID)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		q := toDomainQuestion(&modelQuestions[i])
		q.Tags = tagsByQuestion[q.ID]
		questions = append(questions, *q)
	}
	return questions, nil
}

type questionTagRow struct {
	QuestionID string       `db:"QUESTION_ID"`
	TagID      string       `db:"TAG_ID"`
	TagName    string       `db:"TAG_NAME"`
	CreatedAt  time.Time    `db:"CREATED_AT"`
	DeletedAt  sql.NullTime `db:"DELETED_AT"`
}

func (a *QuizDatabaseAdapter) getTagsForQuizQuestions(ctx context.Context, exec DBTX, quizID string) (map[string][]domain.Tag, error) {
	var rows []questionTagRow
	query := `SELECT qt.QUESTION_ID, t.ID TAG_ID, t.NAME TAG_NAME, t.CREATED_AT, t.DELETED_AT
	FROM question_tags qt
	JOIN tags t ON t.ID = qt.TAG_ID AND t.DELETED_AT IS NULL
	JOIN questions q ON q.ID = qt.QUESTION_ID
	WHERE q.QUIZ_ID = :1 AND q.DELETED_AT IS NULL
	ORDER BY t.NAME`
	if err := exec.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get question tags for quiz %s: %w", quizID, err)
	}

	result := make(map[string][]domain.Tag)
	for _, row := range rows {
		result[row.QuestionID] = append(result[row.QuestionID], domain.Tag{ID: row.TagID, Name: row.TagName})
	}
	return result, nil
}

func (a *QuizDatabaseAdapter) getTagsForQuiz(ctx context.Context, exec DBTX, quizID string) ([]domain.Tag, error) {
	var modelTags []models.Tag
	query := `SELECT t.ID, t.NAME, t.CREATED_AT, t.DELETED_AT
	FROM quiz_tags qt
	JOIN tags t ON t.ID = qt.TAG_ID AND t.DELETED_AT IS NULL
	WHERE qt.QUIZ_ID = :1
	ORDER BY t.NAME`
	if err := exec.SelectContext(ctx, &modelTags, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get tags for quiz %s: %w", quizID, err)
	}

	tags := make([]domain.Tag, 0, len(modelTags))
	for i := range modelTags {
		tags = append(tags, toDomainTag(&modelTags[i]))
	}
	return tags, nil
}

// GetAllQuizzes implements domain.QuizRepository. Quizzes carry their
// tags and questions; newest first.
func (a *QuizDatabaseAdapter) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuizzes []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE DELETED_AT IS NULL ORDER BY CREATED_AT DESC`
	if err := exec.SelectContext(ctx, &modelQuizzes, query); err != nil {
		return nil, fmt.Errorf("failed to get quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quiz := toDomainQuiz(&modelQuizzes[i])

		questions, err := a.getQuestionsByQuizID(ctx, exec, quiz.ID)
		if err != nil {
			return nil, err
		}
		quiz.Questions = questions

		tags, err := a.getTagsForQuiz(ctx, exec, quiz.ID)
		if err != nil {
			return nil, err
		}
		quiz.Tags = tags

		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

// SaveQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz, tagIDs []string) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	exec := GetExecutor(ctx, a.db)

	quiz.ID = util.NewULID()
	quiz.CreatedAt = time.Now()
	quiz.UpdatedAt = quiz.CreatedAt

	query := `INSERT INTO quizzes (ID, TITLE, DESCRIPTION, CREATED_AT, UPDATED_AT) VALUES (:1, :2, :3, :4, :5)`
	_, err := exec.ExecContext(ctx, query,
		quiz.ID,
		quiz.Title,
		util.StringPtrToNullString(quiz.Description),
		quiz.CreatedAt,
		quiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	return a.replaceQuizTags(ctx, exec, quiz.ID, tagIDs)
}

// UpdateQuiz implements domain.QuizRepository. A nil tagIDs leaves the
// tag set unchanged; an empty slice clears it.
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz, tagIDs []string) error {
	if quiz == nil {
		return fmt.Errorf("cannot update nil quiz")
	}
	if quiz.ID == "" {
		return fmt.Errorf("cannot update quiz with empty ID")
	}
	exec := GetExecutor(ctx, a.db)

	quiz.UpdatedAt = time.Now()
	query := `UPDATE quizzes SET TITLE = :1, DESCRIPTION = :2, UPDATED_AT = :3 WHERE ID = :4 AND DELETED_AT IS NULL`
	result, err := exec.ExecContext(ctx, query,
		quiz.Title,
		util.StringPtrToNullString(quiz.Description),
		quiz.UpdatedAt,
		quiz.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(quiz.ID)
	}

	if tagIDs == nil {
		return nil
	}
	return a.replaceQuizTags(ctx, exec, quiz.ID, tagIDs)
}

func (a *QuizDatabaseAdapter) replaceQuizTags(ctx context.Context, exec DBTX, quizID string, tagIDs []string) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM quiz_tags WHERE QUIZ_ID = :1`, quizID); err != nil {
		return fmt.Errorf("failed to clear quiz tags: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := exec.ExecContext(ctx, `INSERT INTO quiz_tags (QUIZ_ID, TAG_ID) VALUES (:1, :2)`, quizID, tagID); err != nil {
			return fmt.Errorf("failed to associate tag %s with quiz %s: %w", tagID, quizID, err)
		}
	}
	return nil
}

// DeleteQuiz implements domain.QuizRepository. The quiz and its
// questions are soft-deleted; attempt rows are intentionally left
// untouched so recorded history keeps its score and total.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)
	now := time.Now()

	result, err := exec.ExecContext(ctx,
		`UPDATE quizzes SET DELETED_AT = :1 WHERE ID = :2 AND DELETED_AT IS NULL`, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(id)
	}

	_, err = exec.ExecContext(ctx,
		`UPDATE questions SET DELETED_AT = :1 WHERE QUIZ_ID = :2 AND DELETED_AT IS NULL`, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete questions of quiz %s: %w", id, err)
	}
	return nil
}

// GetQuestionByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuestion models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE ID = :1 AND DELETED_AT IS NULL`
	err := exec.GetContext(ctx, &modelQuestion, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}

	question := toDomainQuestion(&modelQuestion)
	tags, err := a.getTagsForQuestion(ctx, exec, id)
	if err != nil {
		return nil, err
	}
	question.Tags = tags
	return question, nil
}

func (a *QuizDatabaseAdapter) getTagsForQuestion(ctx context.Context, exec DBTX, questionID string) ([]domain.Tag, error) {
	var modelTags []models.Tag
	query := `SELECT t.ID, t.NAME, t.CREATED_AT, t.DELETED_AT
	FROM question_tags qt
	JOIN tags t ON t.ID = qt.TAG_ID AND t.DELETED_AT IS NULL
	WHERE qt.QUESTION_ID = :1
	ORDER BY t.NAME`
	if err := exec.SelectContext(ctx, &modelTags, query, questionID); err != nil {
		return nil, fmt.Errorf("failed to get tags for question %s: %w", questionID, err)
	}
	tags := make([]domain.Tag, 0, len(modelTags))
	for i := range modelTags {
		tags = append(tags, toDomainTag(&modelTags[i]))
	}
	return tags, nil
}

// GetQuestionsByTag implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuestionsByTag(ctx context.Context, tagID string) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var modelQuestions []models.Question
	query := `SELECT q.ID, q.QUIZ_ID, q.QUESTION_TYPE, q.CONTENT, q.OPTIONS, q.CORRECT_ANSWER, q.EXPLANATION, q.DIFFICULTY, q.CREATED_AT, q.UPDATED_AT, q.DELETED_AT
	FROM questions q
	JOIN question_tags qt ON qt.QUESTION_ID = q.ID
	WHERE qt.TAG_ID = :1 AND q.DELETED_AT IS NULL
	ORDER BY q.ID`
	if err := exec.SelectContext(ctx, &modelQuestions, query, tagID); err != nil {
		return nil, fmt.Errorf("failed to get questions by tag %s: %w", tagID, err)
	}

	questions := make([]*domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuestion(&modelQuestions[i]))
	}
	return questions, nil
}

// SaveQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question, tagIDs []string) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	exec := GetExecutor(ctx, a.db)

	question.ID = util.NewULID()
	question.CreatedAt = time.Now()
	question.UpdatedAt = question.CreatedAt

	options, err := models.StringSlice(question.Options).Value()
	if err != nil {
		return fmt.Errorf("failed to encode question options: %w", err)
	}

	query := `INSERT INTO questions (ID, QUIZ_ID, QUESTION_TYPE, CONTENT, OPTIONS, CORRECT_ANSWER, EXPLANATION, DIFFICULTY, CREATED_AT, UPDATED_AT)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10)`
	_, err = exec.ExecContext(ctx, query,
		question.ID,
		question.QuizID,
		string(question.Type),
		question.Content,
		options,
		question.CorrectAnswer,
		util.StringPtrToNullString(question.Explanation),
		string(question.Difficulty),
		question.CreatedAt,
		question.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	return a.replaceQuestionTags(ctx, exec, question.ID, tagIDs)
}

// UpdateQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) UpdateQuestion(ctx context.Context, question *domain.Question, tagIDs []string) error {
	if question == nil {
		return fmt.Errorf("cannot update nil question")
	}
	if question.ID == "" {
		return fmt.Errorf("cannot update question with empty ID")
	}
	exec := GetExecutor(ctx, a.db)

	question.UpdatedAt = time.Now()
	options, err := models.StringSlice(question.Options).Value()
	if err != nil {
		return fmt.Errorf("failed to encode question options: %w", err)
	}

	query := `UPDATE questions SET CONTENT = :1, OPTIONS = :2, CORRECT_ANSWER = :3, EXPLANATION = :4, DIFFICULTY = :5, UPDATED_AT = :6
	WHERE ID = :7 AND DELETED_AT IS NULL`
	result, err := exec.ExecContext(ctx, query,
		question.Content,
		options,
		question.CorrectAnswer,
		util.StringPtrToNullString(question.Explanation),
		string(question.Difficulty),
		question.UpdatedAt,
		question.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuestionNotFoundError(question.ID)
	}

	if tagIDs == nil {
		return nil
	}
	return a.replaceQuestionTags(ctx, exec, question.ID, tagIDs)
}

func (a *QuizDatabaseAdapter) replaceQuestionTags(ctx context.Context, exec DBTX, questionID string, tagIDs []string) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM question_tags WHERE QUESTION_ID = :1`, questionID); err != nil {
		return fmt.Errorf("failed to clear question tags: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := exec.ExecContext(ctx, `INSERT INTO question_tags (QUESTION_ID, TAG_ID) VALUES (:1, :2)`, questionID, tagID); err != nil {
			return fmt.Errorf("failed to associate tag %s with question %s: %w", tagID, questionID, err)
		}
	}
	return nil
}

// DeleteQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeleteQuestion(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)

	result, err := exec.ExecContext(ctx,
		`UPDATE questions SET DELETED_AT = :1 WHERE ID = :2 AND DELETED_AT IS NULL`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}
