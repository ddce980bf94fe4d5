package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"quizlog/internal/domain"
	"quizlog/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupQuizTestDB creates a new sqlx.DB instance and sqlmock for quiz repository testing.
func setupQuizTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestToDomainQuiz(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelQuiz := &models.Quiz{
		ID:          "01HZQUIZAAAAAAAAAAAAAAAAAA",
		Title:       "Capitals",
		Description: sql.NullString{String: "European capitals", Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	domainQuiz := toDomainQuiz(modelQuiz)
	assert.NotNil(t, domainQuiz)
	assert.Equal(t, modelQuiz.ID, domainQuiz.ID)
	assert.Equal(t, modelQuiz.Title, domainQuiz.Title)
	assert.Equal(t, "European capitals", *domainQuiz.Description)

	modelQuiz.Description.Valid = false
	domainQuiz = toDomainQuiz(modelQuiz)
	assert.Nil(t, domainQuiz.Description)

	assert.Nil(t, toDomainQuiz(nil))
}

func TestToDomainQuestion(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelQuestion := &models.Question{
		ID:            "01HZQAAAAAAAAAAAAAAAAAAAAA",
		QuizID:        "01HZQUIZAAAAAAAAAAAAAAAAAA",
		QuestionType:  "multiple_choice",
		Content:       "Pick B",
		Options:       models.StringSlice{"A", "B", "C"},
		CorrectAnswer: "B",
		Difficulty:    "easy",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	domainQuestion := toDomainQuestion(modelQuestion)
	assert.NotNil(t, domainQuestion)
	assert.Equal(t, domain.MultipleChoice, domainQuestion.Type)
	assert.Equal(t, []string{"A", "B", "C"}, domainQuestion.Options)
	assert.Equal(t, "B", domainQuestion.CorrectAnswer)
	assert.Nil(t, domainQuestion.Explanation)

	assert.Nil(t, toDomainQuestion(nil))
}

func TestGetQuizByID(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	now := time.Now()
	quizID := "01HZQUIZAAAAAAAAAAAAAAAAAA"

	quizRows := sqlmock.NewRows([]string{"ID", "TITLE", "DESCRIPTION", "CREATED_AT", "UPDATED_AT", "DELETED_AT"}).
		AddRow(quizID, "Capitals", "European capitals", now, now, nil)
	mock.ExpectQuery(`SELECT .* FROM quizzes WHERE ID = :1 AND DELETED_AT IS NULL`).
		WithArgs(quizID).
		WillReturnRows(quizRows)

	questionRows := sqlmock.NewRows([]string{"ID", "QUIZ_ID", "QUESTION_TYPE", "CONTENT", "OPTIONS", "CORRECT_ANSWER", "EXPLANATION", "DIFFICULTY", "CREATED_AT", "UPDATED_AT", "DELETED_AT"}).
		AddRow("01HZQAAAAAAAAAAAAAAAAAAAAA", quizID, "short_answer", "Capital of France", `[]`, "Paris", nil, "easy", now, now, nil).
		AddRow("01HZQBBBBBBBBBBBBBBBBBBBBB", quizID, "true_false", "The sky is green", `[]`, "false", nil, "easy", now, now, nil)
	mock.ExpectQuery(`SELECT .* FROM questions WHERE QUIZ_ID = :1 AND DELETED_AT IS NULL ORDER BY ID`).
		WithArgs(quizID).
		WillReturnRows(questionRows)

	mock.ExpectQuery(`SELECT qt.QUESTION_ID, t.ID TAG_ID`).
		WithArgs(quizID).
		WillReturnRows(sqlmock.NewRows([]string{"QUESTION_ID", "TAG_ID", "TAG_NAME", "CREATED_AT", "DELETED_AT"}).
			AddRow("01HZQAAAAAAAAAAAAAAAAAAAAA", "01HZTAGAAAAAAAAAAAAAAAAAAA", "geography", now, nil))

	mock.ExpectQuery(`SELECT t.ID, t.NAME, t.CREATED_AT, t.DELETED_AT\s+FROM quiz_tags`).
		WithArgs(quizID).
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "CREATED_AT", "DELETED_AT"}).
			AddRow("01HZTAGAAAAAAAAAAAAAAAAAAA", "geography", now, nil))

	quiz, err := adapter.GetQuizByID(context.Background(), quizID)

	assert.NoError(t, err)
	assert.NotNil(t, quiz)
	assert.Equal(t, "Capitals", quiz.Title)
	assert.Len(t, quiz.Questions, 2)
	// Question order follows the quiz (ULIDs sort by creation time).
	assert.Equal(t, "01HZQAAAAAAAAAAAAAAAAAAAAA", quiz.Questions[0].ID)
	assert.Len(t, quiz.Questions[0].Tags, 1)
	assert.Equal(t, "geography", quiz.Questions[0].Tags[0].Name)
	assert.Len(t, quiz.Tags, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuizByID_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT .* FROM quizzes WHERE ID = :1 AND DELETED_AT IS NULL`).
		WithArgs("01HZMISSINGAAAAAAAAAAAAAAA").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	quiz, err := adapter.GetQuizByID(context.Background(), "01HZMISSINGAAAAAAAAAAAAAAA")

	assert.NoError(t, err)
	assert.Nil(t, quiz)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuiz(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO quizzes`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`DELETE FROM quiz_tags WHERE QUIZ_ID = :1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO quiz_tags`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	quiz := domain.NewQuiz("Capitals", nil)
	err := adapter.SaveQuiz(context.Background(), quiz, []string{"01HZTAGAAAAAAAAAAAAAAAAAAA"})

	assert.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuiz_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(`UPDATE quizzes SET TITLE = :1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	quiz := &domain.Quiz{ID: "01HZMISSINGAAAAAAAAAAAAAAA", Title: "Renamed"}
	err := adapter.UpdateQuiz(context.Background(), quiz, nil)

	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuiz_SoftDeletesQuizAndQuestions(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(`UPDATE quizzes SET DELETED_AT = :1 WHERE ID = :2 AND DELETED_AT IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE questions SET DELETED_AT = :1 WHERE QUIZ_ID = :2 AND DELETED_AT IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := adapter.DeleteQuiz(context.Background(), "01HZQUIZAAAAAAAAAAAAAAAAAA")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuiz_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(`UPDATE quizzes SET DELETED_AT = :1 WHERE ID = :2 AND DELETED_AT IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.DeleteQuiz(context.Background(), "01HZMISSINGAAAAAAAAAAAAAAA")

	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	defer db.Close()
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(`UPDATE questions SET DELETED_AT = :1 WHERE ID = :2 AND DELETED_AT IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.DeleteQuestion(context.Background(), "01HZMISSINGAAAAAAAAAAAAAAA")

	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
