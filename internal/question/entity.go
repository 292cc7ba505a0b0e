package question

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OptionLabel identifies one of the four answer choices of a question.
type OptionLabel string

const (
	OptionA OptionLabel = "A"
	OptionB OptionLabel = "B"
	OptionC OptionLabel = "C"
	OptionD OptionLabel = "D"
)

// ParseOptionLabel validates a raw label. Labels outside A-D are rejected,
// never coerced.
func ParseOptionLabel(s string) (OptionLabel, error) {
	switch OptionLabel(s) {
	case OptionA, OptionB, OptionC, OptionD:
		return OptionLabel(s), nil
	}
	return "", fmt.Errorf("invalid option label %q", s)
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty %q", s)
}

// Question is immutable once loaded into a test session.
type Question struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionText    string         `gorm:"type:text;not null" json:"question_text"`
	OptionA         string         `gorm:"type:text;not null" json:"option_a"`
	OptionB         string         `gorm:"type:text;not null" json:"option_b"`
	OptionC         string         `gorm:"type:text;not null" json:"option_c"`
	OptionD         string         `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer   OptionLabel    `gorm:"type:text;not null" json:"correct_answer"`
	Explanation     *string        `gorm:"type:text" json:"explanation,omitempty"`
	Topic           string         `gorm:"type:text;not null;index" json:"topic"`
	SubTopic        *string        `gorm:"type:text" json:"sub_topic,omitempty"`
	DifficultyLevel Difficulty     `gorm:"type:text;not null;default:'medium'" json:"difficulty_level"`
	QuestionType    string         `gorm:"type:text;not null;default:'mcq'" json:"question_type"`
	Year            *int           `json:"year,omitempty"`
	Source          string         `gorm:"type:text;not null;default:'custom'" json:"source"`
	Tags            datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// Validate checks the fields a question needs before it can be served in a
// session.
func (q *Question) Validate() error {
	if q.QuestionText == "" {
		return fmt.Errorf("question text is required")
	}
	if q.OptionA == "" || q.OptionB == "" || q.OptionC == "" || q.OptionD == "" {
		return fmt.Errorf("all four options are required")
	}
	if _, err := ParseOptionLabel(string(q.CorrectAnswer)); err != nil {
		return fmt.Errorf("correct answer: %w", err)
	}
	if _, err := ParseDifficulty(string(q.DifficultyLevel)); err != nil {
		return err
	}
	if q.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	return nil
}
