package testsession

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
	"github.com/prepwise/upsc-prep-lambda/internal/question"
	"github.com/prepwise/upsc-prep-lambda/internal/voicememo"
)

// Store is the persistence port the engine writes through. Attempt upserts
// during the session are best-effort; FinalizeSession must be atomic.
type Store interface {
	UpsertAttempt(ctx context.Context, attempt *QuestionAttempt) error
	FinalizeSession(ctx context.Context, session *TestSession, attempts []*QuestionAttempt) error
}

// Engine drives one test session from start to submission. In-memory state
// (answers, confidence, flags, per-question time) is authoritative until
// Submit persists it. All methods are safe for concurrent use; the manager's
// ticker and HTTP handlers share the instance.
type Engine struct {
	mu sync.Mutex

	session   *TestSession
	questions []*question.Question
	store     Store
	clock     Clock

	status       SessionStatus
	currentIndex int
	answers      map[uuid.UUID]question.OptionLabel
	confidence   map[uuid.UUID]int
	flagged      map[uuid.UUID]struct{}
	secondsSpent map[uuid.UUID]int
	remaining    int
	shownAt      time.Time
}

// NewEngine builds an engine in the NotStarted state. The session record must
// already be persisted; Start activates the countdown.
func NewEngine(session *TestSession, questions []*question.Question, store Store, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	return &Engine{
		session:      session,
		questions:    questions,
		store:        store,
		clock:        clock,
		status:       StatusNotStarted,
		answers:      make(map[uuid.UUID]question.OptionLabel),
		confidence:   make(map[uuid.UUID]int),
		flagged:      make(map[uuid.UUID]struct{}),
		secondsSpent: make(map[uuid.UUID]int),
		remaining:    session.DurationSeconds,
	}
}

// Start transitions NotStarted -> Active and seeds the countdown.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusNotStarted {
		return ErrAlreadyStarted
	}
	if len(e.questions) == 0 {
		return ErrNoQuestions
	}

	e.status = StatusActive
	e.remaining = e.session.DurationSeconds
	e.shownAt = e.clock.Now()
	return nil
}

// SessionID returns the id of the owned session.
func (e *Engine) SessionID() uuid.UUID {
	return e.session.ID
}

// UserID returns the owning user.
func (e *Engine) UserID() uuid.UUID {
	return e.session.UserID
}

// Status reports the current lifecycle state.
func (e *Engine) Status() SessionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// SelectAnswer records or overwrites the answer for a question. Persistence
// is deferred to confidence capture or submission.
func (e *Engine) SelectAnswer(questionID uuid.UUID, optionLabel string) error {
	label, err := question.ParseOptionLabel(optionLabel)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusActive {
		return ErrSessionNotActive
	}
	if e.lookup(questionID) == nil {
		return ErrUnknownQuestion
	}

	e.answers[questionID] = label
	return nil
}

// SetConfidence records a 1-5 self-rating for an already-answered question
// and eagerly persists the attempt. It returns the voice-memo trigger
// decision for the answer/confidence pair. With no answer recorded yet it is
// a no-op, since the rating control only appears post-answer.
func (e *Engine) SetConfidence(ctx context.Context, questionID uuid.UUID, level int) (voicememo.Decision, error) {
	if level < 1 || level > 5 {
		return voicememo.Decision{}, ErrInvalidConfidence
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusActive {
		return voicememo.Decision{}, ErrSessionNotActive
	}
	q := e.lookup(questionID)
	if q == nil {
		return voicememo.Decision{}, ErrUnknownQuestion
	}

	answer, answered := e.answers[questionID]
	if !answered {
		return voicememo.Decision{}, nil
	}

	e.confidence[questionID] = level
	if questionID == e.questions[e.currentIndex].ID {
		e.flushCurrentTime()
	}

	isCorrect := answer == q.CorrectAnswer
	attempt := e.buildAttempt(q)

	// Eager write: in-memory state stays authoritative, so a failure here is
	// logged and the session carries on.
	if err := e.store.UpsertAttempt(ctx, attempt); err != nil {
		config.WithContext(ctx).WithError(err).
			WithField("session_id", e.session.ID).
			WithField("question_id", questionID).
			Warn("failed to persist question attempt, continuing")
	}

	return voicememo.Evaluate(isCorrect, level), nil
}

// Navigate moves to the previous or next question, flushing time spent on the
// question being left. Moves past either end are no-ops.
func (e *Engine) Navigate(direction string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusActive {
		return ErrSessionNotActive
	}

	switch direction {
	case "next":
		e.moveTo(e.currentIndex + 1)
	case "previous", "prev":
		e.moveTo(e.currentIndex - 1)
	default:
		return ErrInvalidDirection
	}
	return nil
}

// JumpTo moves directly to a question index, as the navigator grid does.
func (e *Engine) JumpTo(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusActive {
		return ErrSessionNotActive
	}
	if index < 0 || index >= len(e.questions) {
		return fmt.Errorf("question index %d out of range", index)
	}

	e.moveTo(index)
	return nil
}

// ToggleFlag marks or unmarks a question for review. In-memory only.
func (e *Engine) ToggleFlag(questionID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusActive {
		return ErrSessionNotActive
	}
	if e.lookup(questionID) == nil {
		return ErrUnknownQuestion
	}

	if _, ok := e.flagged[questionID]; ok {
		delete(e.flagged, questionID)
	} else {
		e.flagged[questionID] = struct{}{}
	}
	return nil
}

// Tick advances the countdown by one second. At zero it forces submission —
// a hard deadline. Returns true once the session is completed.
func (e *Engine) Tick(ctx context.Context) bool {
	e.mu.Lock()
	if e.status != StatusActive {
		done := e.status == StatusCompleted
		e.mu.Unlock()
		return done
	}

	e.remaining--
	if e.remaining > 0 {
		e.mu.Unlock()
		return false
	}
	e.remaining = 0
	e.mu.Unlock()

	if err := e.Submit(ctx); err != nil {
		config.WithContext(ctx).WithError(err).
			WithField("session_id", e.session.ID).
			Error("forced submission failed, session stays active for retry")
		return false
	}
	return true
}

// Submit scores the session and persists the results atomically, moving
// Active -> Completed. Calling it on a completed session is a no-op, which
// makes the manual-click vs timer-expiry race harmless. On persistence
// failure the session stays Active so the user can retry.
func (e *Engine) Submit(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == StatusCompleted {
		return nil
	}
	if e.status != StatusActive {
		return ErrSessionNotActive
	}

	e.flushCurrentTime()

	var correct, wrong int
	attempts := make([]*QuestionAttempt, 0, len(e.answers))
	for _, q := range e.questions {
		answer, answered := e.answers[q.ID]
		if !answered {
			continue
		}
		if answer == q.CorrectAnswer {
			correct++
		} else {
			wrong++
		}
		attempts = append(attempts, e.buildAttempt(q))
	}

	elapsed := e.session.DurationSeconds - e.remaining
	agg := computeAggregates(len(e.questions), correct, wrong, e.session.NegativeMark, elapsed)

	completedAt := e.clock.Now()
	session := *e.session
	session.TotalAttempted = agg.TotalAttempted
	session.CorrectCount = agg.CorrectCount
	session.WrongCount = agg.WrongCount
	session.SkippedCount = agg.SkippedCount
	session.RawScore = agg.RawScore
	session.NegativeMarks = agg.NegativeMarks
	session.FinalScore = agg.FinalScore
	session.TimeTakenSeconds = agg.TimeTakenSeconds
	session.IsCompleted = true
	session.CompletedAt = &completedAt

	if err := e.store.FinalizeSession(ctx, &session, attempts); err != nil {
		return fmt.Errorf("failed to persist session results: %w", err)
	}

	*e.session = session
	e.status = StatusCompleted
	return nil
}

// Snapshot returns a read-only view of the engine for the API layer.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	answers := make(map[string]string, len(e.answers))
	for id, label := range e.answers {
		answers[id.String()] = string(label)
	}
	confidence := make(map[string]int, len(e.confidence))
	for id, level := range e.confidence {
		confidence[id.String()] = level
	}
	flagged := make([]string, 0, len(e.flagged))
	for id := range e.flagged {
		flagged = append(flagged, id.String())
	}

	var current *QuestionView
	if e.currentIndex < len(e.questions) {
		view := newQuestionView(e.questions[e.currentIndex])
		current = &view
	}

	return Snapshot{
		SessionID:        e.session.ID,
		Status:           e.status,
		CurrentIndex:     e.currentIndex,
		TotalQuestions:   len(e.questions),
		RemainingSeconds: e.remaining,
		CurrentQuestion:  current,
		Answers:          answers,
		Confidence:       confidence,
		Flagged:          flagged,
		AnsweredCount:    len(e.answers),
	}
}

// lookup returns the session's question with the given id, nil when the id is
// not part of the set. Caller holds the lock.
func (e *Engine) lookup(questionID uuid.UUID) *question.Question {
	for _, q := range e.questions {
		if q.ID == questionID {
			return q
		}
	}
	return nil
}

// moveTo clamps at array bounds and flushes time for the question being left.
// Caller holds the lock.
func (e *Engine) moveTo(index int) {
	if index < 0 || index >= len(e.questions) {
		return
	}
	e.flushCurrentTime()
	e.currentIndex = index
}

// flushCurrentTime adds the wall-clock seconds since the current question was
// displayed to its cumulative total and restarts the stopwatch. Caller holds
// the lock.
func (e *Engine) flushCurrentTime() {
	now := e.clock.Now()
	if !e.shownAt.IsZero() && e.currentIndex < len(e.questions) {
		spent := int(now.Sub(e.shownAt).Seconds())
		if spent > 0 {
			qid := e.questions[e.currentIndex].ID
			e.secondsSpent[qid] += spent
		}
	}
	e.shownAt = now
}

// buildAttempt materializes the current in-memory state for one question as
// an attempt row. Caller holds the lock.
func (e *Engine) buildAttempt(q *question.Question) *QuestionAttempt {
	attempt := &QuestionAttempt{
		SessionID:        e.session.ID,
		UserID:           e.session.UserID,
		QuestionID:       q.ID,
		ConfidenceLevel:  3,
		TimeTakenSeconds: e.secondsSpent[q.ID],
		AttemptOrder:     e.positionOf(q.ID),
	}
	if answer, ok := e.answers[q.ID]; ok {
		label := answer
		attempt.SelectedAnswer = &label
		attempt.IsCorrect = answer == q.CorrectAnswer
	}
	if level, ok := e.confidence[q.ID]; ok {
		attempt.ConfidenceLevel = level
	}
	return attempt
}

func (e *Engine) positionOf(questionID uuid.UUID) int {
	for i, q := range e.questions {
		if q.ID == questionID {
			return i + 1
		}
	}
	return 0
}
