package voicememo

import (
	"gorm.io/gorm"

	"github.com/prepwise/upsc-prep-lambda/internal/aifeedback"
	"github.com/prepwise/upsc-prep-lambda/internal/question"
)

type VoiceMemoContainer struct {
	Repo    MemoRepository
	Service MemoService
	Handler *Handler
}

func NewVoiceMemoContainer(db *gorm.DB, questionRepo question.QuestionRepository, feedback aifeedback.Service) *VoiceMemoContainer {
	repo := NewRepository(db)
	service := NewService(repo, questionRepo, feedback)
	handler := NewHandler(service)

	return &VoiceMemoContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
