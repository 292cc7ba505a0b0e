package voicememo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VoiceMemo is a spoken reflection recorded after the trigger policy fired.
// Audio capture and transcription happen client-side; the backend stores the
// artifact and attaches the AI analysis when one could be produced.
type VoiceMemo struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID       *uuid.UUID     `gorm:"type:uuid;index" json:"session_id,omitempty"`
	QuestionID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"question_id"`
	Framing         Framing        `gorm:"type:text;not null" json:"framing"`
	AudioURL        string         `gorm:"type:text" json:"audio_url,omitempty"`
	Transcript      string         `gorm:"type:text" json:"transcript,omitempty"`
	DurationSeconds int            `gorm:"not null;default:0" json:"duration_seconds"`
	AIFeedback      datatypes.JSON `gorm:"type:jsonb" json:"ai_feedback,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
