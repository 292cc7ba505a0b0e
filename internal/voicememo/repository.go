package voicememo

import (
	"errors"

	"gorm.io/gorm"
)

type MemoRepository interface {
	Create(m *VoiceMemo) error
	GetByID(id string) (*VoiceMemo, error)
	ListByUser(userID string) ([]*VoiceMemo, error)
	Update(m *VoiceMemo) error
}

type memoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) MemoRepository {
	return &memoRepository{db: db}
}

func (r *memoRepository) Create(m *VoiceMemo) error {
	return r.db.Create(m).Error
}

func (r *memoRepository) GetByID(id string) (*VoiceMemo, error) {
	var m VoiceMemo
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *memoRepository) ListByUser(userID string) ([]*VoiceMemo, error) {
	var memos []*VoiceMemo
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&memos).Error; err != nil {
		return nil, err
	}
	return memos, nil
}

func (r *memoRepository) Update(m *VoiceMemo) error {
	return r.db.Save(m).Error
}
