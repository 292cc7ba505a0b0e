package voicememo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/prepwise/upsc-prep-lambda/internal/aifeedback"
	"github.com/prepwise/upsc-prep-lambda/internal/config"
	"github.com/prepwise/upsc-prep-lambda/internal/question"
)

var ErrQuestionNotFound = errors.New("question not found")

// CreateMemoInput carries what the client knows after the trigger fired.
type CreateMemoInput struct {
	UserID          uuid.UUID
	SessionID       *uuid.UUID
	QuestionID      uuid.UUID
	Framing         Framing
	AudioURL        string
	Transcript      string
	DurationSeconds int
	SelectedAnswer  string
	IsCorrect       bool
	ConfidenceLevel int
}

type MemoService interface {
	CreateMemo(ctx context.Context, input CreateMemoInput) (*VoiceMemo, error)
	GetMemo(ctx context.Context, userID, id string) (*VoiceMemo, error)
	ListMemos(ctx context.Context, userID string) ([]*VoiceMemo, error)
}

type memoService struct {
	repo         MemoRepository
	questionRepo question.QuestionRepository
	feedback     aifeedback.Service
}

func NewService(repo MemoRepository, questionRepo question.QuestionRepository, feedback aifeedback.Service) MemoService {
	return &memoService{repo: repo, questionRepo: questionRepo, feedback: feedback}
}

// CreateMemo stores the memo and attaches AI analysis when a transcript is
// available. Feedback is supplementary: any analysis failure is logged and
// the memo is saved without it.
func (s *memoService) CreateMemo(ctx context.Context, input CreateMemoInput) (*VoiceMemo, error) {
	log := config.WithContext(ctx)

	q, err := s.questionRepo.GetByID(input.QuestionID.String())
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	memo := &VoiceMemo{
		UserID:          input.UserID,
		SessionID:       input.SessionID,
		QuestionID:      input.QuestionID,
		Framing:         input.Framing,
		AudioURL:        input.AudioURL,
		Transcript:      input.Transcript,
		DurationSeconds: input.DurationSeconds,
	}

	if input.Transcript != "" {
		feedback, err := s.feedback.AnalyzeTranscript(ctx, aifeedback.AnalysisRequest{
			Transcript:      input.Transcript,
			QuestionText:    q.QuestionText,
			SelectedAnswer:  input.SelectedAnswer,
			CorrectAnswer:   string(q.CorrectAnswer),
			IsCorrect:       input.IsCorrect,
			ConfidenceLevel: input.ConfidenceLevel,
			PromptFocus:     string(input.Framing.PromptTypeFor()),
		})
		if err != nil {
			log.WithError(err).WithField("question_id", input.QuestionID).
				Warn("voice memo analysis failed, saving memo without feedback")
		} else if raw, err := json.Marshal(feedback); err == nil {
			memo.AIFeedback = raw
		}
	}

	if err := s.repo.Create(memo); err != nil {
		log.WithError(err).Error("failed to save voice memo")
		return nil, err
	}

	log.WithField("memo_id", memo.ID).
		WithField("framing", memo.Framing).
		Info("voice memo recorded")
	return memo, nil
}

func (s *memoService) GetMemo(ctx context.Context, userID, id string) (*VoiceMemo, error) {
	memo, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if memo == nil || memo.UserID.String() != userID {
		return nil, nil
	}
	return memo, nil
}

func (s *memoService) ListMemos(ctx context.Context, userID string) ([]*VoiceMemo, error) {
	return s.repo.ListByUser(userID)
}
