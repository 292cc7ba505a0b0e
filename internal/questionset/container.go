package questionset

import (
	"gorm.io/gorm"

	"github.com/prepwise/upsc-prep-lambda/internal/question"
)

type QuestionSetContainer struct {
	Repo    QuestionSetRepository
	Service QuestionSetService
	Handler *Handler
}

func NewQuestionSetContainer(db *gorm.DB, questionRepo question.QuestionRepository) *QuestionSetContainer {
	repo := NewRepository(db)
	service := NewService(repo, questionRepo)
	handler := NewHandler(service)

	return &QuestionSetContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
