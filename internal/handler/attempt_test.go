package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"quizlog/internal/config"
	"quizlog/internal/domain"
	"quizlog/internal/dto"
	"quizlog/internal/logger"
	"quizlog/internal/middleware"
	"quizlog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Initialize(config.LoggerConfig{Level: "debug", Env: "test"})
	os.Exit(m.Run())
}

// MockAttemptService mocks service.AttemptService
type MockAttemptService struct {
	mock.Mock
}

func (m *MockAttemptService) SubmitAttempt(ctx context.Context, req *dto.SubmitAttemptRequest) (*dto.AttemptResultResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptResultResponse), args.Error(1)
}

func (m *MockAttemptService) ListAttempts(ctx context.Context, quizID *string) ([]dto.AttemptResponse, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AttemptResponse), args.Error(1)
}

func setupAttemptApp(svc *MockAttemptService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewAttemptHandler(svc, validation.NewValidator())
	app.Post("/api/attempts", h.SubmitAttempt)
	app.Get("/api/attempts", h.ListAttempts)
	return app
}

const testQuizID = "01HZ8S7T4NQWKRTXVASDFGHJKM"

func TestSubmitAttemptHandler(t *testing.T) {
	svc := new(MockAttemptService)
	svc.On("SubmitAttempt", mock.Anything, mock.MatchedBy(func(req *dto.SubmitAttemptRequest) bool {
		return req.QuizID == testQuizID
	})).Return(&dto.AttemptResultResponse{
		Attempt:        dto.AttemptResponse{ID: "01HZATTAAAAAAAAAAAAAAAAAAA", QuizID: testQuizID, Score: 1, TotalQuestions: 3},
		Score:          1,
		TotalQuestions: 3,
		CorrectCount:   1,
		WrongQuestions: []dto.QuestionResponse{},
	}, nil)

	app := setupAttemptApp(svc)

	body, _ := json.Marshal(dto.SubmitAttemptRequest{QuizID: testQuizID})
	req := httptest.NewRequest(http.MethodPost, "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result dto.AttemptResultResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
}

func TestSubmitAttemptHandler_InvalidQuizID(t *testing.T) {
	svc := new(MockAttemptService)
	app := setupAttemptApp(svc)

	body, _ := json.Marshal(dto.SubmitAttemptRequest{QuizID: "not-a-ulid"})
	req := httptest.NewRequest(http.MethodPost, "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "SubmitAttempt", mock.Anything, mock.Anything)
}

func TestSubmitAttemptHandler_QuizNotFound(t *testing.T) {
	svc := new(MockAttemptService)
	svc.On("SubmitAttempt", mock.Anything, mock.Anything).
		Return(nil, domain.NewQuizNotFoundError(testQuizID))

	app := setupAttemptApp(svc)

	body, _ := json.Marshal(dto.SubmitAttemptRequest{QuizID: testQuizID})
	req := httptest.NewRequest(http.MethodPost, "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListAttemptsHandler_FilterByQuiz(t *testing.T) {
	svc := new(MockAttemptService)
	svc.On("ListAttempts", mock.Anything, mock.MatchedBy(func(quizID *string) bool {
		return quizID != nil && *quizID == testQuizID
	})).Return([]dto.AttemptResponse{
		{ID: "01HZATTAAAAAAAAAAAAAAAAAAA", QuizID: testQuizID, Score: 2, TotalQuestions: 3},
	}, nil)

	app := setupAttemptApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/attempts?quiz_id="+testQuizID, nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var attempts []dto.AttemptResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&attempts))
	assert.Len(t, attempts, 1)
	assert.Equal(t, 2, attempts[0].Score)
}
