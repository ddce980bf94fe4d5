package dto

import "time"

// SubmittedAnswer is one answer of a submission, matched to a question
// by ID.
type SubmittedAnswer struct {
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

// SubmitAttemptRequest represents a full quiz submission
// @Description One scored submission of answers against a quiz
type SubmitAttemptRequest struct {
	QuizID  string            `json:"quiz_id"`
	Answers []SubmittedAnswer `json:"answers"`
}

// AttemptResponse represents a persisted attempt in the API response
type AttemptResponse struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quiz_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// AttemptResultResponse is the result of scoring one submission.
// CorrectCount always equals Score; both are exposed for client
// convenience. WrongQuestions preserve the quiz's question order.
type AttemptResultResponse struct {
	Attempt        AttemptResponse    `json:"attempt"`
	Score          int                `json:"score"`
	TotalQuestions int                `json:"total_questions"`
	CorrectCount   int                `json:"correct_count"`
	WrongQuestions []QuestionResponse `json:"wrong_questions"`
}

// CategoryStatResponse is the per-tag correctness aggregate
type CategoryStatResponse struct {
	TagName        string  `json:"tag_name"`
	CorrectRate    float64 `json:"correct_rate"`
	TotalQuestions int     `json:"total_questions"`
}

// StatisticsResponse summarizes the full attempt history
type StatisticsResponse struct {
	TotalAttempts  int                    `json:"total_attempts"`
	AverageScore   float64                `json:"average_score"`
	CategoryStats  []CategoryStatResponse `json:"category_stats"`
	RecentAttempts []AttemptResponse      `json:"recent_attempts"`
}
