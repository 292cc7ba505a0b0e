package questionset

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
	"github.com/prepwise/upsc-prep-lambda/internal/question"
)

var ErrUnknownQuestion = errors.New("question does not exist")

type QuestionSetService interface {
	CreateSet(ctx context.Context, qs *QuestionSet, questionIDs []string) error
	GetSet(ctx context.Context, id string) (*QuestionSet, error)
	ListSetsByUser(ctx context.Context, userID string) ([]*QuestionSet, error)
	LoadQuestions(ctx context.Context, id string) ([]*question.Question, error)
	DeleteSet(ctx context.Context, id string) error
}

type questionSetService struct {
	repo         QuestionSetRepository
	questionRepo question.QuestionRepository
}

func NewService(repo QuestionSetRepository, questionRepo question.QuestionRepository) QuestionSetService {
	return &questionSetService{repo: repo, questionRepo: questionRepo}
}

func (s *questionSetService) CreateSet(ctx context.Context, qs *QuestionSet, questionIDs []string) error {
	log := config.WithContext(ctx)

	if qs.DurationSeconds == 0 {
		qs.DurationSeconds = DefaultDurationSeconds
	}
	if qs.NegativeMark == 0 {
		qs.NegativeMark = DefaultNegativeMark
	}
	if err := qs.Validate(); err != nil {
		return err
	}

	questions, err := s.questionRepo.GetByIDs(questionIDs)
	if err != nil {
		return err
	}
	if len(questions) != len(questionIDs) {
		return ErrUnknownQuestion
	}

	qs.Items = make([]QuestionSetItem, 0, len(questionIDs))
	for i, idStr := range questionIDs {
		qid, err := uuid.Parse(idStr)
		if err != nil {
			return ErrUnknownQuestion
		}
		qs.Items = append(qs.Items, QuestionSetItem{
			QuestionID: qid,
			Position:   i + 1,
		})
	}

	if err := s.repo.Create(qs); err != nil {
		log.WithError(err).Error("failed to create question set")
		return err
	}

	log.WithField("question_set_id", qs.ID).
		WithField("questions", len(qs.Items)).
		Info("question set created")
	return nil
}

func (s *questionSetService) GetSet(ctx context.Context, id string) (*QuestionSet, error) {
	return s.repo.GetByID(id)
}

func (s *questionSetService) ListSetsByUser(ctx context.Context, userID string) ([]*QuestionSet, error) {
	return s.repo.ListByUser(userID)
}

func (s *questionSetService) LoadQuestions(ctx context.Context, id string) ([]*question.Question, error) {
	return s.repo.LoadQuestions(id)
}

func (s *questionSetService) DeleteSet(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("failed to delete question set")
		return err
	}
	return nil
}
