package testsession

import (
	"time"

	"github.com/google/uuid"

	"github.com/prepwise/upsc-prep-lambda/internal/question"
)

// SessionStatus enumerates the lifecycle states of a test session. There are
// no reverse transitions and no pause state.
type SessionStatus string

const (
	StatusNotStarted SessionStatus = "NOT_STARTED"
	StatusActive     SessionStatus = "ACTIVE"
	StatusCompleted  SessionStatus = "COMPLETED"
)

// TestSession is the persisted record of one timed attempt at a question set.
// The engine owns it while active; after completion it is immutable.
type TestSession struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionSetID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"question_set_id"`
	TestName        string     `gorm:"type:text;not null" json:"test_name"`
	TestType        string     `gorm:"type:text;not null;default:'practice'" json:"test_type"`
	TotalQuestions  int        `gorm:"not null" json:"total_questions"`
	DurationSeconds int        `gorm:"not null" json:"duration_seconds"`
	NegativeMark    float64    `gorm:"type:numeric;not null" json:"negative_mark"`
	StartedAt       time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	IsCompleted     bool       `gorm:"not null;default:false" json:"is_completed"`

	TotalAttempted   int     `gorm:"not null;default:0" json:"total_attempted"`
	CorrectCount     int     `gorm:"not null;default:0" json:"correct_count"`
	WrongCount       int     `gorm:"not null;default:0" json:"wrong_count"`
	SkippedCount     int     `gorm:"not null;default:0" json:"skipped_count"`
	RawScore         float64 `gorm:"type:numeric;not null;default:0" json:"raw_score"`
	NegativeMarks    float64 `gorm:"type:numeric;not null;default:0" json:"negative_marks"`
	FinalScore       float64 `gorm:"type:numeric;not null;default:0" json:"final_score"`
	TimeTakenSeconds int     `gorm:"not null;default:0" json:"time_taken_seconds"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// QuestionAttempt is one user's record against one question of a session.
// Upserted on the (session, question) pair: re-answering or re-rating updates
// the row instead of duplicating it.
type QuestionAttempt struct {
	ID               uuid.UUID             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID        uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_session_question" json:"session_id"`
	UserID           uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionID       uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_session_question" json:"question_id"`
	SelectedAnswer   *question.OptionLabel `gorm:"type:text" json:"selected_answer,omitempty"`
	IsCorrect        bool                  `gorm:"not null;default:false" json:"is_correct"`
	ConfidenceLevel  int                   `gorm:"not null;default:3" json:"confidence_level"`
	TimeTakenSeconds int                   `gorm:"not null;default:0" json:"time_taken_seconds"`
	AttemptOrder     int                   `gorm:"not null" json:"attempt_order"`
	CreatedAt        time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}
