package questionset

import (
	"errors"

	"gorm.io/gorm"

	"github.com/prepwise/upsc-prep-lambda/internal/question"
)

type QuestionSetRepository interface {
	Create(qs *QuestionSet) error
	GetByID(id string) (*QuestionSet, error)
	ListByUser(userID string) ([]*QuestionSet, error)
	// LoadQuestions returns the set's questions in item order.
	LoadQuestions(id string) ([]*question.Question, error)
	Delete(id string) error
}

type questionSetRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionSetRepository {
	return &questionSetRepository{db: db}
}

func (r *questionSetRepository) Create(qs *QuestionSet) error {
	return r.db.Create(qs).Error
}

func (r *questionSetRepository) GetByID(id string) (*QuestionSet, error) {
	var qs QuestionSet
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&qs, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &qs, nil
}

func (r *questionSetRepository) ListByUser(userID string) ([]*QuestionSet, error) {
	var sets []*QuestionSet
	if err := r.db.
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *questionSetRepository) LoadQuestions(id string) ([]*question.Question, error) {
	var questions []*question.Question
	err := r.db.
		Joins("JOIN question_set_items ON question_set_items.question_id = questions.id").
		Where("question_set_items.question_set_id = ?", id).
		Order("question_set_items.position ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionSetRepository) Delete(id string) error {
	return r.db.Delete(&QuestionSet{}, "id = ?", id).Error
}
