package question

import (
	"context"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, q *Question) error
	GetQuestion(ctx context.Context, id string) (*Question, error)
	ListQuestions(ctx context.Context, filters ListFilters) ([]*Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo QuestionRepository
}

func NewService(repo QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(ctx context.Context, q *Question) error {
	log := config.WithContext(ctx)

	if err := q.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("failed to create question")
		return err
	}

	log.WithField("question_id", q.ID).Info("question created")
	return nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*Question, error) {
	return s.repo.GetByID(id)
}

func (s *questionService) ListQuestions(ctx context.Context, filters ListFilters) ([]*Question, error) {
	return s.repo.List(filters)
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("failed to delete question")
		return err
	}
	return nil
}
