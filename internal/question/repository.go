package question

import (
	"errors"

	"gorm.io/gorm"
)

// ListFilters narrows down List results. Zero values mean "no filter".
type ListFilters struct {
	Topic      string
	Difficulty Difficulty
	Source     string
	OrderBy    string // created_at | topic | difficulty_level
	Limit      int
}

type QuestionRepository interface {
	Create(q *Question) error
	GetByID(id string) (*Question, error)
	GetByIDs(ids []string) ([]*Question, error)
	List(filters ListFilters) ([]*Question, error)
	Delete(id string) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *questionRepository) GetByID(id string) (*Question, error) {
	var q Question
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) GetByIDs(ids []string) ([]*Question, error) {
	var questions []*Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) List(filters ListFilters) ([]*Question, error) {
	q := r.db.Model(&Question{})

	if filters.Topic != "" {
		q = q.Where("topic = ?", filters.Topic)
	}
	if filters.Difficulty != "" {
		q = q.Where("difficulty_level = ?", filters.Difficulty)
	}
	if filters.Source != "" {
		q = q.Where("source = ?", filters.Source)
	}

	switch filters.OrderBy {
	case "topic":
		q = q.Order("topic ASC")
	case "difficulty_level":
		q = q.Order("difficulty_level ASC")
	default:
		q = q.Order("created_at ASC")
	}

	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}

	var questions []*Question
	if err := q.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(id string) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}
