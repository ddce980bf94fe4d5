package service

import (
	"context"

	"quizlog/internal/domain"
	"quizlog/internal/dto"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	UpdateQuiz(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id string) error
	GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)
	ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo domain.QuizRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func toTagResponses(tags []domain.Tag) []dto.TagResponse {
	result := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, dto.TagResponse{ID: t.ID, Name: t.Name})
	}
	return result
}

func toQuestionResponse(q *domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:            q.ID,
		QuizID:        q.QuizID,
		Type:          string(q.Type),
		Content:       q.Content,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Difficulty:    string(q.Difficulty),
		Tags:          toTagResponses(q.Tags),
	}
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	questions := make([]dto.QuestionResponse, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		questions = append(questions, toQuestionResponse(&quiz.Questions[i]))
	}
	return &dto.QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Tags:        toTagResponses(quiz.Tags),
		Questions:   questions,
		CreatedAt:   quiz.CreatedAt,
	}
}

// CreateQuiz implements QuizService
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	quiz := domain.NewQuiz(req.Title, req.Description)
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveQuiz(ctx, quiz, req.TagIDs); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	return s.GetQuiz(ctx, quiz.ID)
}

// UpdateQuiz implements QuizService. Only supplied fields change; a
// non-nil tag set replaces the association.
func (s *quizService) UpdateQuiz(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = req.Description
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuiz(ctx, quiz, req.TagIDs); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to update quiz", err)
	}

	return s.GetQuiz(ctx, id)
}

// DeleteQuiz implements QuizService. Recorded attempts are not touched.
func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.repo.DeleteQuiz(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.NewInternalError("Failed to delete quiz", err)
	}
	return nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	return toQuizResponse(quiz), nil
}

// ListQuizzes implements QuizService
func (s *quizService) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.repo.GetAllQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	summaries := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, dto.QuizSummaryResponse{
			ID:            quiz.ID,
			Title:         quiz.Title,
			Description:   quiz.Description,
			Tags:          toTagResponses(quiz.Tags),
			QuestionCount: len(quiz.Questions),
			CreatedAt:     quiz.CreatedAt,
		})
	}
	return summaries, nil
}
