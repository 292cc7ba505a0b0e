package testsession

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepwise/upsc-prep-lambda/internal/question"
	"github.com/prepwise/upsc-prep-lambda/internal/questionset"
)

type fakeRepo struct {
	fakeStore
	sessions map[string]*TestSession
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[string]*TestSession)}
}

func (r *fakeRepo) CreateSession(_ context.Context, session *TestSession) error {
	r.sessions[session.ID.String()] = session
	return nil
}

func (r *fakeRepo) GetSession(_ context.Context, id string) (*TestSession, error) {
	return r.sessions[id], nil
}

func (r *fakeRepo) ListSessionsByUser(_ context.Context, userID string) ([]*TestSession, error) {
	var out []*TestSession
	for _, s := range r.sessions {
		if s.UserID.String() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAttempts(_ context.Context, sessionID string) ([]*QuestionAttempt, error) {
	var out []*QuestionAttempt
	for _, a := range r.finalAttempts {
		if a.SessionID.String() == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) FinalizeSession(ctx context.Context, session *TestSession, attempts []*QuestionAttempt) error {
	if err := r.fakeStore.FinalizeSession(ctx, session, attempts); err != nil {
		return err
	}
	r.sessions[session.ID.String()] = session
	return nil
}

type fakeSetService struct {
	set       *questionset.QuestionSet
	questions []*question.Question
}

func (f *fakeSetService) CreateSet(context.Context, *questionset.QuestionSet, []string) error {
	return nil
}

func (f *fakeSetService) GetSet(_ context.Context, id string) (*questionset.QuestionSet, error) {
	if f.set != nil && f.set.ID.String() == id {
		return f.set, nil
	}
	return nil, nil
}

func (f *fakeSetService) ListSetsByUser(context.Context, string) ([]*questionset.QuestionSet, error) {
	return nil, nil
}

func (f *fakeSetService) LoadQuestions(_ context.Context, id string) ([]*question.Question, error) {
	if f.set != nil && f.set.ID.String() == id {
		return f.questions, nil
	}
	return nil, nil
}

func (f *fakeSetService) DeleteSet(context.Context, string) error {
	return nil
}

func newTestService(t *testing.T, n int) (SessionService, *fakeRepo, *fakeSetService, *Manager) {
	t.Helper()

	repo := newFakeRepo()
	sets := &fakeSetService{
		set: &questionset.QuestionSet{
			ID:              uuid.New(),
			Name:            "GS Paper I Mock 3",
			TestType:        "mock",
			DurationSeconds: 7200,
			NegativeMark:    1.0 / 3.0,
		},
		questions: makeQuestions(n),
	}
	manager := NewManager(newFakeClock())
	return NewService(repo, sets, manager, newFakeClock()), repo, sets, manager
}

func TestServiceStartSession(t *testing.T) {
	svc, repo, sets, manager := newTestService(t, 5)
	ctx := context.Background()
	userID := uuid.New().String()

	snap, err := svc.StartSession(ctx, userID, sets.set.ID.String())
	require.NoError(t, err)

	assert.Equal(t, StatusActive, snap.Status)
	assert.Equal(t, 5, snap.TotalQuestions)
	assert.Equal(t, 7200, snap.RemainingSeconds)

	// The session record is persisted before the engine goes live.
	require.Contains(t, repo.sessions, snap.SessionID.String())
	stored := repo.sessions[snap.SessionID.String()]
	assert.Equal(t, "GS Paper I Mock 3", stored.TestName)
	assert.Equal(t, "mock", stored.TestType)

	_, ok := manager.Get(snap.SessionID)
	assert.True(t, ok)
}

func TestServiceStartSessionErrors(t *testing.T) {
	svc, _, sets, _ := newTestService(t, 5)
	ctx := context.Background()

	t.Run("BadUserID", func(t *testing.T) {
		_, err := svc.StartSession(ctx, "not-a-uuid", sets.set.ID.String())
		assert.ErrorIs(t, err, ErrIdentityUnresolved)
	})

	t.Run("UnknownQuestionSet", func(t *testing.T) {
		_, err := svc.StartSession(ctx, uuid.New().String(), uuid.New().String())
		assert.ErrorIs(t, err, ErrNoQuestions)
	})

	t.Run("EmptyQuestionSet", func(t *testing.T) {
		emptySvc, _, emptySets, _ := newTestService(t, 0)
		_, err := emptySvc.StartSession(ctx, uuid.New().String(), emptySets.set.ID.String())
		assert.ErrorIs(t, err, ErrNoQuestions)
	})
}

func TestServiceOwnershipEnforced(t *testing.T) {
	svc, _, sets, _ := newTestService(t, 3)
	ctx := context.Background()
	owner := uuid.New().String()

	snap, err := svc.StartSession(ctx, owner, sets.set.ID.String())
	require.NoError(t, err)

	intruder := uuid.New().String()
	_, err = svc.GetSnapshot(ctx, intruder, snap.SessionID.String())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Submit(ctx, intruder, snap.SessionID.String())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestServiceSubmitDropsEngineAndStaysIdempotent(t *testing.T) {
	svc, repo, sets, manager := newTestService(t, 3)
	ctx := context.Background()
	userID := uuid.New().String()

	snap, err := svc.StartSession(ctx, userID, sets.set.ID.String())
	require.NoError(t, err)

	qid := snap.CurrentQuestion.ID.String()
	_, err = svc.SelectAnswer(ctx, userID, snap.SessionID.String(), qid, "A")
	require.NoError(t, err)

	session, err := svc.Submit(ctx, userID, snap.SessionID.String())
	require.NoError(t, err)
	assert.True(t, session.IsCompleted)
	assert.Equal(t, 1, session.CorrectCount)

	_, ok := manager.Get(snap.SessionID)
	assert.False(t, ok)

	// A retried submit resolves against the persisted record.
	again, err := svc.Submit(ctx, userID, snap.SessionID.String())
	require.NoError(t, err)
	assert.True(t, again.IsCompleted)
	assert.Equal(t, 1, repo.finalizeCount())
}

func TestServiceGetResults(t *testing.T) {
	svc, _, sets, _ := newTestService(t, 3)
	ctx := context.Background()
	userID := uuid.New().String()

	snap, err := svc.StartSession(ctx, userID, sets.set.ID.String())
	require.NoError(t, err)

	qid := snap.CurrentQuestion.ID.String()
	_, err = svc.SelectAnswer(ctx, userID, snap.SessionID.String(), qid, "B")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, userID, snap.SessionID.String())
	require.NoError(t, err)

	results, err := svc.GetResults(ctx, userID, snap.SessionID.String())
	require.NoError(t, err)
	assert.True(t, results.Session.IsCompleted)
	require.Len(t, results.Attempts, 1)
	assert.False(t, results.Attempts[0].IsCorrect)

	_, err = svc.GetResults(ctx, uuid.New().String(), snap.SessionID.String())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetResults(ctx, userID, uuid.New().String())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
