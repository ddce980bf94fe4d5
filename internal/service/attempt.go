package service

import (
	"context"
	"time"

	"quizlog/internal/domain"
	"quizlog/internal/dto"
	"quizlog/internal/logger"

	"go.uber.org/zap"
)

// AttemptService defines the interface for scoring and reading attempts
type AttemptService interface {
	// SubmitAttempt scores a submission against the quiz's questions
	// and records an immutable attempt. Resubmitting the same answers
	// records a new, distinct attempt.
	SubmitAttempt(ctx context.Context, req *dto.SubmitAttemptRequest) (*dto.AttemptResultResponse, error)
	ListAttempts(ctx context.Context, quizID *string) ([]dto.AttemptResponse, error)
}

type attemptService struct {
	quizRepo    domain.QuizRepository
	attemptRepo domain.AttemptRepository
	txManager   domain.TransactionManager
	stats       StatisticsService
}

// NewAttemptService creates a new instance of attemptService. stats may
// be nil when no statistics cache invalidation is wanted.
func NewAttemptService(
	quizRepo domain.QuizRepository,
	attemptRepo domain.AttemptRepository,
	txManager domain.TransactionManager,
	stats StatisticsService,
) AttemptService {
	return &attemptService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		txManager:   txManager,
		stats:       stats,
	}
}

func toAttemptResponse(a *domain.Attempt) dto.AttemptResponse {
	return dto.AttemptResponse{
		ID:             a.ID,
		QuizID:         a.QuizID,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		CompletedAt:    a.CompletedAt,
	}
}

// SubmitAttempt implements AttemptService.
//
// Every question of the quiz is scored: a question without a submitted
// answer is scored against the empty string and counts as incorrect.
// Submitted answers for question IDs outside the quiz are ignored.
// Wrong questions are reported in quiz order, not submission order.
// The attempt row and its answer rows are written in one transaction,
// so a concurrent quiz deletion leaves no partial attempt behind.
func (s *attemptService) SubmitAttempt(ctx context.Context, req *dto.SubmitAttemptRequest) (*dto.AttemptResultResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(req.QuizID)
	}

	// First submission per question wins on duplicates.
	submitted := make(map[string]string, len(req.Answers))
	for _, ans := range req.Answers {
		if _, ok := submitted[ans.QuestionID]; !ok {
			submitted[ans.QuestionID] = ans.UserAnswer
		}
	}

	correctCount := 0
	answers := make([]domain.AttemptAnswer, 0, len(quiz.Questions))
	wrongQuestions := make([]dto.QuestionResponse, 0)
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		userAnswer := submitted[question.ID]
		isCorrect := question.IsCorrectAnswer(userAnswer)
		if isCorrect {
			correctCount++
		} else {
			wrongQuestions = append(wrongQuestions, toQuestionResponse(question))
		}
		answers = append(answers, domain.AttemptAnswer{
			QuestionID: question.ID,
			UserAnswer: userAnswer,
			IsCorrect:  isCorrect,
		})
	}

	attempt := domain.NewAttempt(quiz.ID, correctCount, len(quiz.Questions), time.Now())
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.attemptRepo.CreateAttempt(txCtx, attempt, answers)
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to persist attempt", err)
	}

	if s.stats != nil {
		if err := s.stats.InvalidateCache(ctx); err != nil {
			logger.Get().Warn("Failed to invalidate statistics cache",
				zap.Error(err),
				zap.String("attempt_id", attempt.ID),
			)
		}
	}

	return &dto.AttemptResultResponse{
		Attempt:        toAttemptResponse(attempt),
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		CorrectCount:   correctCount,
		WrongQuestions: wrongQuestions,
	}, nil
}

// ListAttempts implements AttemptService
func (s *attemptService) ListAttempts(ctx context.Context, quizID *string) ([]dto.AttemptResponse, error) {
	attempts, err := s.attemptRepo.ListAttempts(ctx, quizID, 0)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list attempts", err)
	}

	result := make([]dto.AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		result = append(result, toAttemptResponse(a))
	}
	return result, nil
}
