package testsession

import (
	"gorm.io/gorm"

	"github.com/prepwise/upsc-prep-lambda/internal/questionset"
)

type SessionContainer struct {
	Repo    SessionRepository
	Manager *Manager
	Service SessionService
	Handler *Handler
}

func NewSessionContainer(db *gorm.DB, sets questionset.QuestionSetService) *SessionContainer {
	repo := NewRepository(db)
	manager := NewManager(SystemClock)
	service := NewService(repo, sets, manager, SystemClock)
	handler := NewHandler(service)

	return &SessionContainer{
		Repo:    repo,
		Manager: manager,
		Service: service,
		Handler: handler,
	}
}
