package testsession

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepwise/upsc-prep-lambda/internal/question"
	"github.com/prepwise/upsc-prep-lambda/internal/voicememo"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeStore struct {
	mu            sync.Mutex
	upserts       []*QuestionAttempt
	finalized     []*TestSession
	finalAttempts []*QuestionAttempt
	finalizeErr   error
}

func (s *fakeStore) UpsertAttempt(_ context.Context, attempt *QuestionAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts = append(s.upserts, attempt)
	return nil
}

func (s *fakeStore) FinalizeSession(_ context.Context, session *TestSession, attempts []*QuestionAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalizeErr != nil {
		return s.finalizeErr
	}
	copied := *session
	s.finalized = append(s.finalized, &copied)
	s.finalAttempts = attempts
	return nil
}

func (s *fakeStore) finalizeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.finalized)
}

// makeQuestions builds n questions whose correct answer is always A.
func makeQuestions(n int) []*question.Question {
	questions := make([]*question.Question, n)
	for i := range questions {
		questions[i] = &question.Question{
			ID:            uuid.New(),
			QuestionText:  fmt.Sprintf("question %d", i+1),
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: question.OptionA,
			Topic:         "polity",
		}
	}
	return questions
}

func newTestEngine(t *testing.T, n, durationSeconds int) (*Engine, []*question.Question, *fakeStore, *fakeClock) {
	t.Helper()

	questions := makeQuestions(n)
	session := &TestSession{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		QuestionSetID:   uuid.New(),
		TestName:        "UPSC CSE Prelims Practice Test",
		TotalQuestions:  n,
		DurationSeconds: durationSeconds,
		NegativeMark:    1.0 / 3.0,
	}
	store := &fakeStore{}
	clock := newFakeClock()
	engine := NewEngine(session, questions, store, clock)
	require.NoError(t, engine.Start())
	return engine, questions, store, clock
}

func TestStart(t *testing.T) {
	t.Run("EmptyQuestionSet", func(t *testing.T) {
		session := &TestSession{ID: uuid.New(), DurationSeconds: 7200}
		engine := NewEngine(session, nil, &fakeStore{}, newFakeClock())
		assert.ErrorIs(t, engine.Start(), ErrNoQuestions)
	})

	t.Run("DoubleStart", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t, 3, 7200)
		assert.ErrorIs(t, engine.Start(), ErrAlreadyStarted)
	})

	t.Run("SeedsCountdown", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t, 3, 7200)
		snap := engine.Snapshot()
		assert.Equal(t, StatusActive, snap.Status)
		assert.Equal(t, 7200, snap.RemainingSeconds)
		assert.Equal(t, 0, snap.CurrentIndex)
	})
}

func TestNavigationStaysWithinBounds(t *testing.T) {
	engine, _, _, _ := newTestEngine(t, 5, 7200)

	// Previous at the first question is a no-op.
	require.NoError(t, engine.Navigate("previous"))
	assert.Equal(t, 0, engine.Snapshot().CurrentIndex)

	// Walk past the end; the index clamps at the last question.
	for i := 0; i < 10; i++ {
		require.NoError(t, engine.Navigate("next"))
	}
	assert.Equal(t, 4, engine.Snapshot().CurrentIndex)

	// An arbitrary mixed sequence never leaves [0, n-1].
	directions := []string{"previous", "next", "next", "previous", "previous", "previous", "next"}
	for _, d := range directions {
		require.NoError(t, engine.Navigate(d))
		idx := engine.Snapshot().CurrentIndex
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
	}

	assert.ErrorIs(t, engine.Navigate("sideways"), ErrInvalidDirection)
}

func TestJumpTo(t *testing.T) {
	engine, _, _, _ := newTestEngine(t, 5, 7200)

	require.NoError(t, engine.JumpTo(3))
	assert.Equal(t, 3, engine.Snapshot().CurrentIndex)

	assert.Error(t, engine.JumpTo(5))
	assert.Error(t, engine.JumpTo(-1))
}

func TestSelectAnswer(t *testing.T) {
	engine, questions, _, _ := newTestEngine(t, 3, 7200)

	t.Run("InvalidLabel", func(t *testing.T) {
		assert.Error(t, engine.SelectAnswer(questions[0].ID, "E"))
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		assert.ErrorIs(t, engine.SelectAnswer(uuid.New(), "A"), ErrUnknownQuestion)
	})

	t.Run("OverwritesPriorAnswer", func(t *testing.T) {
		require.NoError(t, engine.SelectAnswer(questions[0].ID, "B"))
		require.NoError(t, engine.SelectAnswer(questions[0].ID, "C"))
		assert.Equal(t, "C", engine.Snapshot().Answers[questions[0].ID.String()])
		assert.Equal(t, 1, engine.Snapshot().AnsweredCount)
	})
}

func TestSetConfidence(t *testing.T) {
	ctx := context.Background()

	t.Run("OutOfRange", func(t *testing.T) {
		engine, questions, _, _ := newTestEngine(t, 3, 7200)
		_, err := engine.SetConfidence(ctx, questions[0].ID, 0)
		assert.ErrorIs(t, err, ErrInvalidConfidence)
		_, err = engine.SetConfidence(ctx, questions[0].ID, 6)
		assert.ErrorIs(t, err, ErrInvalidConfidence)
	})

	t.Run("NoAnswerIsNoOp", func(t *testing.T) {
		engine, questions, store, _ := newTestEngine(t, 3, 7200)
		decision, err := engine.SetConfidence(ctx, questions[0].ID, 4)
		require.NoError(t, err)
		assert.False(t, decision.Trigger)
		assert.Empty(t, store.upserts)
	})

	t.Run("EagerlyPersistsAttempt", func(t *testing.T) {
		engine, questions, store, _ := newTestEngine(t, 3, 7200)
		require.NoError(t, engine.SelectAnswer(questions[0].ID, "B")) // wrong
		decision, err := engine.SetConfidence(ctx, questions[0].ID, 5)
		require.NoError(t, err)

		assert.True(t, decision.Trigger)
		assert.Equal(t, voicememo.FramingHighConfidenceWrong, decision.Framing)

		require.Len(t, store.upserts, 1)
		attempt := store.upserts[0]
		assert.Equal(t, questions[0].ID, attempt.QuestionID)
		assert.False(t, attempt.IsCorrect)
		assert.Equal(t, 5, attempt.ConfidenceLevel)
		assert.Equal(t, 1, attempt.AttemptOrder)
	})
}

func TestSubmitScoringScenario(t *testing.T) {
	// 100 questions: 50 correct, 20 wrong, 30 skipped.
	engine, questions, store, _ := newTestEngine(t, 100, 7200)

	for i := 0; i < 50; i++ {
		require.NoError(t, engine.SelectAnswer(questions[i].ID, "A"))
	}
	for i := 50; i < 70; i++ {
		require.NoError(t, engine.SelectAnswer(questions[i].ID, "B"))
	}

	require.NoError(t, engine.Submit(context.Background()))

	require.Equal(t, 1, store.finalizeCount())
	final := store.finalized[0]
	assert.Equal(t, 70, final.TotalAttempted)
	assert.Equal(t, 50, final.CorrectCount)
	assert.Equal(t, 20, final.WrongCount)
	assert.Equal(t, 30, final.SkippedCount)
	assert.Equal(t, 50.0, final.RawScore)
	assert.Equal(t, 6.67, final.NegativeMarks)
	assert.Equal(t, 43.33, final.FinalScore)
	assert.True(t, final.IsCompleted)
	assert.NotNil(t, final.CompletedAt)
}

func TestSubmitIsIdempotent(t *testing.T) {
	engine, questions, store, _ := newTestEngine(t, 3, 7200)
	require.NoError(t, engine.SelectAnswer(questions[0].ID, "A"))

	require.NoError(t, engine.Submit(context.Background()))
	require.NoError(t, engine.Submit(context.Background()))

	assert.Equal(t, 1, store.finalizeCount())
	assert.Equal(t, StatusCompleted, engine.Status())
}

func TestSubmitPersistenceFailureKeepsSessionActive(t *testing.T) {
	engine, questions, store, _ := newTestEngine(t, 3, 7200)
	require.NoError(t, engine.SelectAnswer(questions[0].ID, "A"))

	store.finalizeErr = fmt.Errorf("connection reset")
	require.Error(t, engine.Submit(context.Background()))
	assert.Equal(t, StatusActive, engine.Status())

	// Retry succeeds once persistence recovers.
	store.finalizeErr = nil
	require.NoError(t, engine.Submit(context.Background()))
	assert.Equal(t, StatusCompleted, engine.Status())
	assert.Equal(t, 1, store.finalizeCount())
}

func TestOperationsAfterCompletionAreRejected(t *testing.T) {
	engine, questions, _, _ := newTestEngine(t, 3, 7200)
	require.NoError(t, engine.Submit(context.Background()))

	assert.ErrorIs(t, engine.SelectAnswer(questions[0].ID, "A"), ErrSessionNotActive)
	assert.ErrorIs(t, engine.Navigate("next"), ErrSessionNotActive)
	assert.ErrorIs(t, engine.ToggleFlag(questions[0].ID), ErrSessionNotActive)
	_, err := engine.SetConfidence(context.Background(), questions[0].ID, 3)
	assert.ErrorIs(t, err, ErrSessionNotActive)
}

func TestTimerExpiryForcesSubmission(t *testing.T) {
	engine, questions, store, _ := newTestEngine(t, 3, 3)

	// Answer the current question but never navigate away or rate it: the
	// in-memory answer must still be counted at the deadline.
	require.NoError(t, engine.SelectAnswer(questions[0].ID, "A"))

	ctx := context.Background()
	assert.False(t, engine.Tick(ctx))
	assert.False(t, engine.Tick(ctx))
	assert.True(t, engine.Tick(ctx))

	assert.Equal(t, StatusCompleted, engine.Status())
	require.Equal(t, 1, store.finalizeCount())
	final := store.finalized[0]
	assert.Equal(t, 1, final.CorrectCount)
	assert.Equal(t, 3, final.TimeTakenSeconds)

	// Further ticks report completion without re-submitting.
	assert.True(t, engine.Tick(ctx))
	assert.Equal(t, 1, store.finalizeCount())
}

func TestTimeOnQuestionAccumulatesAcrossVisits(t *testing.T) {
	engine, questions, store, clock := newTestEngine(t, 3, 7200)
	require.NoError(t, engine.SelectAnswer(questions[0].ID, "A"))

	// First visit: 10 seconds on question 1.
	clock.Advance(10 * time.Second)
	require.NoError(t, engine.Navigate("next"))

	// Return and spend another 15 seconds.
	require.NoError(t, engine.Navigate("previous"))
	clock.Advance(15 * time.Second)
	require.NoError(t, engine.Navigate("next"))

	require.NoError(t, engine.Submit(context.Background()))

	require.Equal(t, 1, store.finalizeCount())
	assert.Empty(t, store.upserts)

	// The attempt row written at submission carries the cumulative total.
	require.Len(t, store.finalAttempts, 1)
	attempt := store.finalAttempts[0]
	assert.Equal(t, questions[0].ID, attempt.QuestionID)
	assert.Equal(t, 25, attempt.TimeTakenSeconds)
}

func TestToggleFlag(t *testing.T) {
	engine, questions, _, _ := newTestEngine(t, 3, 7200)

	require.NoError(t, engine.ToggleFlag(questions[1].ID))
	assert.Contains(t, engine.Snapshot().Flagged, questions[1].ID.String())

	require.NoError(t, engine.ToggleFlag(questions[1].ID))
	assert.Empty(t, engine.Snapshot().Flagged)

	assert.ErrorIs(t, engine.ToggleFlag(uuid.New()), ErrUnknownQuestion)
}

func TestSnapshotHidesCorrectAnswer(t *testing.T) {
	engine, questions, _, _ := newTestEngine(t, 2, 7200)

	snap := engine.Snapshot()
	require.NotNil(t, snap.CurrentQuestion)
	assert.Equal(t, questions[0].ID, snap.CurrentQuestion.ID)
	assert.Equal(t, 2, snap.TotalQuestions)
}
