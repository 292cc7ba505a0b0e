package user

import (
	"time"

	"github.com/google/uuid"

	util "github.com/prepwise/upsc-prep-lambda/internal/utils"
)

type User struct {
	ID             uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email          string              `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash   string              `gorm:"type:text;not null" json:"-"`
	DisplayName    string              `gorm:"type:text;not null" json:"display_name"`
	Role           string              `gorm:"type:text;not null;default:'aspirant'" json:"role"`
	TargetExamDate *util.LocalDateTime `json:"target_exam_date,omitempty"`
	CurrentLevel   string              `gorm:"type:text;not null;default:'beginner'" json:"current_level"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}
