package testsession

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Store
	CreateSession(ctx context.Context, session *TestSession) error
	GetSession(ctx context.Context, id string) (*TestSession, error)
	ListSessionsByUser(ctx context.Context, userID string) ([]*TestSession, error)
	ListAttempts(ctx context.Context, sessionID string) ([]*QuestionAttempt, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *TestSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSession(ctx context.Context, id string) (*TestSession, error) {
	var session TestSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ListSessionsByUser(ctx context.Context, userID string) ([]*TestSession, error) {
	var sessions []*TestSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) ListAttempts(ctx context.Context, sessionID string) ([]*QuestionAttempt, error) {
	var attempts []*QuestionAttempt
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("attempt_order ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// UpsertAttempt writes one attempt row keyed on (session_id, question_id).
// Re-answering or re-rating the same question updates the existing row.
func (r *sessionRepository) UpsertAttempt(ctx context.Context, attempt *QuestionAttempt) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"selected_answer", "is_correct", "confidence_level",
			"time_taken_seconds", "updated_at",
		}),
	}).Create(attempt).Error
}

// FinalizeSession writes the attempts and the completed session record in one
// transaction so submission is atomic.
func (r *sessionRepository) FinalizeSession(ctx context.Context, session *TestSession, attempts []*QuestionAttempt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, attempt := range attempts {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "session_id"}, {Name: "question_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"selected_answer", "is_correct", "confidence_level",
					"time_taken_seconds", "updated_at",
				}),
			}).Create(attempt).Error; err != nil {
				return err
			}
		}

		return tx.Model(&TestSession{}).
			Where("id = ?", session.ID).
			Updates(map[string]interface{}{
				"is_completed":       session.IsCompleted,
				"completed_at":       session.CompletedAt,
				"total_attempted":    session.TotalAttempted,
				"correct_count":      session.CorrectCount,
				"wrong_count":        session.WrongCount,
				"skipped_count":      session.SkippedCount,
				"raw_score":          session.RawScore,
				"negative_marks":     session.NegativeMarks,
				"final_score":        session.FinalScore,
				"time_taken_seconds": session.TimeTakenSeconds,
			}).Error
	})
}
