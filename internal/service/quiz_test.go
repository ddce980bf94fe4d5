package service

import (
	"context"
	"testing"
	"time"

	"quizlog/internal/domain"
	"quizlog/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateQuiz(t *testing.T) {
	repo := new(MockQuizRepository)

	repo.On("SaveQuiz", mock.Anything, mock.Anything, []string{"01HZTAGAAAAAAAAAAAAAAAAAAA"}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Quiz).ID = "01HZQUIZAAAAAAAAAAAAAAAAAA"
		}).Return(nil)
	repo.On("GetQuizByID", mock.Anything, "01HZQUIZAAAAAAAAAAAAAAAAAA").
		Return(&domain.Quiz{
			ID:    "01HZQUIZAAAAAAAAAAAAAAAAAA",
			Title: "Capitals",
			Tags:  []domain.Tag{{ID: "01HZTAGAAAAAAAAAAAAAAAAAAA", Name: "geography"}},
		}, nil)

	svc := NewQuizService(repo)

	quiz, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{
		Title:  "Capitals",
		TagIDs: []string{"01HZTAGAAAAAAAAAAAAAAAAAAA"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Capitals", quiz.Title)
	assert.Len(t, quiz.Tags, 1)
	repo.AssertExpectations(t)
}

func TestCreateQuiz_MissingTitle(t *testing.T) {
	repo := new(MockQuizRepository)
	svc := NewQuizService(repo)

	quiz, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{Title: ""})

	assert.Nil(t, quiz)
	var validationErrs domain.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	repo.AssertNotCalled(t, "SaveQuiz", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetQuiz_NotFound(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("GetQuizByID", mock.Anything, "01HZMISSINGAAAAAAAAAAAAAAA").Return(nil, nil)

	svc := NewQuizService(repo)

	quiz, err := svc.GetQuiz(context.Background(), "01HZMISSINGAAAAAAAAAAAAAAA")

	assert.Nil(t, quiz)
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdateQuiz_PartialUpdate(t *testing.T) {
	repo := new(MockQuizRepository)
	existing := &domain.Quiz{
		ID:        "01HZQUIZAAAAAAAAAAAAAAAAAA",
		Title:     "Capitals",
		CreatedAt: time.Now(),
	}
	repo.On("GetQuizByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("UpdateQuiz", mock.Anything, mock.MatchedBy(func(q *domain.Quiz) bool {
		return q.Title == "World Capitals"
	}), []string(nil)).Return(nil)

	svc := NewQuizService(repo)

	title := "World Capitals"
	quiz, err := svc.UpdateQuiz(context.Background(), existing.ID, &dto.UpdateQuizRequest{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "World Capitals", quiz.Title)
	repo.AssertExpectations(t)
}

func TestDeleteQuiz_PropagatesNotFound(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("DeleteQuiz", mock.Anything, "01HZMISSINGAAAAAAAAAAAAAAA").
		Return(domain.NewQuizNotFoundError("01HZMISSINGAAAAAAAAAAAAAAA"))

	svc := NewQuizService(repo)

	err := svc.DeleteQuiz(context.Background(), "01HZMISSINGAAAAAAAAAAAAAAA")

	assert.True(t, domain.IsNotFound(err))
}

func TestListQuizzes(t *testing.T) {
	repo := new(MockQuizRepository)
	repo.On("GetAllQuizzes", mock.Anything).Return([]*domain.Quiz{
		{
			ID:        "01HZQUIZAAAAAAAAAAAAAAAAAA",
			Title:     "Capitals",
			Questions: []domain.Question{{ID: "q1"}, {ID: "q2"}},
		},
	}, nil)

	svc := NewQuizService(repo)

	quizzes, err := svc.ListQuizzes(context.Background())

	assert.NoError(t, err)
	assert.Len(t, quizzes, 1)
	assert.Equal(t, 2, quizzes[0].QuestionCount)
}
