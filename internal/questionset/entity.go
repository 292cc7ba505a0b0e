package questionset

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultDurationSeconds matches the standard 2-hour UPSC prelims window.
	DefaultDurationSeconds = 7200
	// DefaultNegativeMark is the fraction deducted per wrong answer.
	DefaultNegativeMark = 1.0 / 3.0
)

// QuestionSet is an ordered collection of questions together with the exam
// parameters a session started from it inherits.
type QuestionSet struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Description     *string   `gorm:"type:text" json:"description,omitempty"`
	TestType        string    `gorm:"type:text;not null;default:'practice'" json:"test_type"` // practice | mock | adaptive
	DurationSeconds int       `gorm:"not null;default:7200" json:"duration_seconds"`
	NegativeMark    float64   `gorm:"type:numeric;not null;default:0.3333333333" json:"negative_mark"`
	CreatedByID     uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	Items []QuestionSetItem `gorm:"foreignKey:QuestionSetID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// QuestionSetItem pins a question at a position inside a set.
type QuestionSetItem struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionSetID uuid.UUID `gorm:"type:uuid;not null;index:idx_set_position,unique" json:"question_set_id"`
	QuestionID    uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	Position      int       `gorm:"not null;index:idx_set_position,unique" json:"position"`
}

func (qs *QuestionSet) Validate() error {
	if qs.Name == "" {
		return fmt.Errorf("name is required")
	}
	if qs.DurationSeconds <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if qs.NegativeMark < 0 || qs.NegativeMark >= 1 {
		return fmt.Errorf("negative mark must be in [0, 1)")
	}
	switch qs.TestType {
	case "practice", "mock", "adaptive":
	default:
		return fmt.Errorf("invalid test type %q", qs.TestType)
	}
	return nil
}
