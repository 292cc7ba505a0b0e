package user

import util "github.com/prepwise/upsc-prep-lambda/internal/utils"

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdate struct {
	DisplayName    *string             `json:"display_name,omitempty"`
	TargetExamDate *util.LocalDateTime `json:"target_exam_date,omitempty"`
	CurrentLevel   *string             `json:"current_level,omitempty"`
}
