package dto

import "time"

// TagResponse represents a tag in the API response
type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateTagRequest represents the payload for creating a tag
type CreateTagRequest struct {
	Name string `json:"name"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information including its questions and tags
type QuizResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Tags        []TagResponse      `json:"tags"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// QuizSummaryResponse is the list-view projection of a quiz
type QuizSummaryResponse struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   *string       `json:"description,omitempty"`
	Tags          []TagResponse `json:"tags"`
	QuestionCount int           `json:"question_count"`
	CreatedAt     time.Time     `json:"created_at"`
}

// QuestionResponse represents a question in the API response
type QuestionResponse struct {
	ID            string        `json:"id"`
	QuizID        string        `json:"quiz_id"`
	Type          string        `json:"type"`
	Content       string        `json:"content"`
	Options       []string      `json:"options,omitempty"`
	CorrectAnswer string        `json:"correct_answer"`
	Explanation   *string       `json:"explanation,omitempty"`
	Difficulty    string        `json:"difficulty"`
	Tags          []TagResponse `json:"tags"`
}

// CreateQuizRequest represents the payload for creating a quiz
type CreateQuizRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// UpdateQuizRequest represents the payload for updating a quiz.
// Nil fields are left unchanged; a non-nil TagIDs replaces the tag set.
type UpdateQuizRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// CreateQuestionRequest represents the payload for adding a question to a quiz
type CreateQuestionRequest struct {
	Type          string   `json:"type"`
	Content       string   `json:"content"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   *string  `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty"`
	TagIDs        []string `json:"tag_ids,omitempty"`
}

// UpdateQuestionRequest represents the payload for updating a question
type UpdateQuestionRequest struct {
	Content       *string  `json:"content,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer *string  `json:"correct_answer,omitempty"`
	Explanation   *string  `json:"explanation,omitempty"`
	Difficulty    *string  `json:"difficulty,omitempty"`
	TagIDs        []string `json:"tag_ids,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
