package service

import (
	"context"

	"quizlog/internal/domain"
	"quizlog/internal/dto"
)

// QuestionService defines the interface for question-related operations
type QuestionService interface {
	CreateQuestion(ctx context.Context, quizID string, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo domain.QuizRepository
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(repo domain.QuizRepository) QuestionService {
	return &questionService{repo: repo}
}

// CreateQuestion implements QuestionService. The quiz must exist; the
// question joins it at the end of the quiz order.
func (s *questionService) CreateQuestion(ctx context.Context, quizID string, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	question := domain.NewQuestion(quizID, domain.QuestionType(req.Type), req.Content, req.CorrectAnswer)
	question.Options = req.Options
	question.Explanation = req.Explanation
	if req.Difficulty != "" {
		question.Difficulty = domain.Difficulty(req.Difficulty)
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveQuestion(ctx, question, req.TagIDs); err != nil {
		return nil, domain.NewInternalError("Failed to save question", err)
	}

	saved, err := s.repo.GetQuestionByID(ctx, question.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to reload question", err)
	}
	resp := toQuestionResponse(saved)
	return &resp, nil
}

// UpdateQuestion implements QuestionService
func (s *questionService) UpdateQuestion(ctx context.Context, id string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	if req.Content != nil {
		question.Content = *req.Content
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = *req.CorrectAnswer
	}
	if req.Explanation != nil {
		question.Explanation = req.Explanation
	}
	if req.Difficulty != nil {
		question.Difficulty = domain.Difficulty(*req.Difficulty)
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuestion(ctx, question, req.TagIDs); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to update question", err)
	}

	updated, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to reload question", err)
	}
	resp := toQuestionResponse(updated)
	return &resp, nil
}

// DeleteQuestion implements QuestionService
func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.NewInternalError("Failed to delete question", err)
	}
	return nil
}
