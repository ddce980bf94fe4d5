package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a JSON document in a text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Quiz represents a quiz row.
type Quiz struct {
	ID          string         `db:"ID"` // ULID
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
	UpdatedAt   time.Time      `db:"UPDATED_AT"`
	DeletedAt   sql.NullTime   `db:"DELETED_AT"`
}

// Question represents a question row. OPTIONS holds the ordered
// multiple-choice options as a JSON array.
type Question struct {
	ID            string         `db:"ID"` // ULID
	QuizID        string         `db:"QUIZ_ID"`
	QuestionType  string         `db:"QUESTION_TYPE"`
	Content       string         `db:"CONTENT"`
	Options       StringSlice    `db:"OPTIONS"`
	CorrectAnswer string         `db:"CORRECT_ANSWER"`
	Explanation   sql.NullString `db:"EXPLANATION"`
	Difficulty    string         `db:"DIFFICULTY"`
	CreatedAt     time.Time      `db:"CREATED_AT"`
	UpdatedAt     time.Time      `db:"UPDATED_AT"`
	DeletedAt     sql.NullTime   `db:"DELETED_AT"`
}

// Tag represents a tag row. Names carry a unique index.
type Tag struct {
	ID        string       `db:"ID"` // ULID
	Name      string       `db:"NAME"`
	CreatedAt time.Time    `db:"CREATED_AT"`
	DeletedAt sql.NullTime `db:"DELETED_AT"`
}

// QuestionTag links a question to a tag.
type QuestionTag struct {
	QuestionID string `db:"QUESTION_ID"`
	TagID      string `db:"TAG_ID"`
}

// QuizTag links a quiz to a tag.
type QuizTag struct {
	QuizID string `db:"QUIZ_ID"`
	TagID  string `db:"TAG_ID"`
}
