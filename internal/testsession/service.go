package testsession

import (
	"context"

	"github.com/google/uuid"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
	"github.com/prepwise/upsc-prep-lambda/internal/questionset"
	"github.com/prepwise/upsc-prep-lambda/internal/voicememo"
)

type SessionService interface {
	StartSession(ctx context.Context, userID, questionSetID string) (Snapshot, error)
	GetSnapshot(ctx context.Context, userID, sessionID string) (Snapshot, error)
	SelectAnswer(ctx context.Context, userID, sessionID, questionID, optionLabel string) (Snapshot, error)
	SetConfidence(ctx context.Context, userID, sessionID, questionID string, level int) (voicememo.Decision, error)
	Navigate(ctx context.Context, userID, sessionID, direction string) (Snapshot, error)
	JumpTo(ctx context.Context, userID, sessionID string, index int) (Snapshot, error)
	ToggleFlag(ctx context.Context, userID, sessionID, questionID string) (Snapshot, error)
	Submit(ctx context.Context, userID, sessionID string) (*TestSession, error)
	ListSessions(ctx context.Context, userID string) ([]*TestSession, error)
	GetResults(ctx context.Context, userID, sessionID string) (*SessionResults, error)
}

type sessionService struct {
	repo    SessionRepository
	sets    questionset.QuestionSetService
	manager *Manager
	clock   Clock
}

func NewService(repo SessionRepository, sets questionset.QuestionSetService, manager *Manager, clock Clock) SessionService {
	if clock == nil {
		clock = SystemClock
	}
	return &sessionService{repo: repo, sets: sets, manager: manager, clock: clock}
}

func (s *sessionService) StartSession(ctx context.Context, userID, questionSetID string) (Snapshot, error) {
	log := config.WithContext(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return Snapshot{}, ErrIdentityUnresolved
	}

	set, err := s.sets.GetSet(ctx, questionSetID)
	if err != nil {
		return Snapshot{}, err
	}
	if set == nil {
		return Snapshot{}, ErrNoQuestions
	}

	questions, err := s.sets.LoadQuestions(ctx, questionSetID)
	if err != nil {
		return Snapshot{}, err
	}
	if len(questions) == 0 {
		return Snapshot{}, ErrNoQuestions
	}

	session := &TestSession{
		ID:              uuid.New(),
		UserID:          uid,
		QuestionSetID:   set.ID,
		TestName:        set.Name,
		TestType:        set.TestType,
		TotalQuestions:  len(questions),
		DurationSeconds: set.DurationSeconds,
		NegativeMark:    set.NegativeMark,
		StartedAt:       s.clock.Now(),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		log.WithError(err).Error("failed to create test session")
		return Snapshot{}, err
	}

	engine := NewEngine(session, questions, s.repo, s.clock)
	if err := engine.Start(); err != nil {
		return Snapshot{}, err
	}
	s.manager.Register(engine)

	log.WithField("session_id", session.ID).
		WithField("user_id", uid).
		WithField("questions", len(questions)).
		WithField("duration_seconds", session.DurationSeconds).
		Info("test session started")
	return engine.Snapshot(), nil
}

func (s *sessionService) GetSnapshot(ctx context.Context, userID, sessionID string) (Snapshot, error) {
	engine, err := s.engineFor(userID, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return engine.Snapshot(), nil
}

func (s *sessionService) SelectAnswer(ctx context.Context, userID, sessionID, questionID, optionLabel string) (Snapshot, error) {
	engine, err := s.engineFor(userID, sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	qid, err := uuid.Parse(questionID)
	if err != nil {
		return Snapshot{}, ErrUnknownQuestion
	}
	if err := engine.SelectAnswer(qid, optionLabel); err != nil {
		return Snapshot{}, err
	}
	return engine.Snapshot(), nil
}

func (s *sessionService) SetConfidence(ctx context.Context, userID, sessionID, questionID string, level int) (voicememo.Decision, error) {
	engine, err := s.engineFor(userID, sessionID)
	if err != nil {
		return voicememo.Decision{}, err
	}

	qid, err := uuid.Parse(questionID)
	if err != nil {
		return voicememo.Decision{}, ErrUnknownQuestion
	}
	return engine.SetConfidence(ctx, qid, level)
}

func (s *sessionService) Navigate(ctx context.Context, userID, sessionID, direction string) (Snapshot, error) {
	engine, err := s.engineFor(userID, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := engine.Navigate(direction); err != nil {
		return Snapshot{}, err
	}
	return engine.Snapshot(), nil
}

func (s *sessionService) JumpTo(ctx context.Context, userID, sessionID string, index int) (Snapshot, error) {
	engine, err := s.engineFor(userID, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := engine.JumpTo(index); err != nil {
		return Snapshot{}, err
	}
	return engine.Snapshot(), nil
}

func (s *sessionService) ToggleFlag(ctx context.Context, userID, sessionID, questionID string) (Snapshot, error) {
	engine, err := s.engineFor(userID, sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	qid, err := uuid.Parse(questionID)
	if err != nil {
		return Snapshot{}, ErrUnknownQuestion
	}
	if err := engine.ToggleFlag(qid); err != nil {
		return Snapshot{}, err
	}
	return engine.Snapshot(), nil
}

func (s *sessionService) Submit(ctx context.Context, userID, sessionID string) (*TestSession, error) {
	log := config.WithContext(ctx)

	engine, err := s.engineFor(userID, sessionID)
	if err != nil {
		// A session already submitted and dropped from the registry: return
		// the persisted record so a retried submit stays a no-op.
		session, dbErr := s.completedSession(ctx, userID, sessionID)
		if dbErr == nil && session != nil {
			return session, nil
		}
		return nil, err
	}

	if err := engine.Submit(ctx); err != nil {
		log.WithError(err).WithField("session_id", sessionID).
			Error("submission failed, session remains active")
		return nil, err
	}

	s.manager.Remove(engine.SessionID())
	log.WithField("session_id", sessionID).Info("test session submitted")
	return engine.session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, userID string) ([]*TestSession, error) {
	return s.repo.ListSessionsByUser(ctx, userID)
}

func (s *sessionService) GetResults(ctx context.Context, userID, sessionID string) (*SessionResults, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.UserID.String() != userID {
		return nil, ErrForbidden
	}

	attempts, err := s.repo.ListAttempts(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionResults{Session: session, Attempts: attempts}, nil
}

// engineFor resolves an active engine and enforces ownership.
func (s *sessionService) engineFor(userID, sessionID string) (*Engine, error) {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	engine, ok := s.manager.Get(sid)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if engine.UserID().String() != userID {
		return nil, ErrForbidden
	}
	return engine, nil
}

// completedSession fetches a persisted session only when it is already
// completed and owned by the caller.
func (s *sessionService) completedSession(ctx context.Context, userID, sessionID string) (*TestSession, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil || session == nil {
		return nil, err
	}
	if session.UserID.String() != userID || !session.IsCompleted {
		return nil, nil
	}
	return session, nil
}
