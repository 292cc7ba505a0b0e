package testsession

import "errors"

var (
	// ErrNoQuestions means the selected question set is empty; the session
	// cannot start.
	ErrNoQuestions = errors.New("no questions available for this test")
	// ErrIdentityUnresolved means the owning user could not be determined.
	ErrIdentityUnresolved = errors.New("user identity could not be resolved")
	// ErrSessionNotFound means no active or persisted session matches the id.
	ErrSessionNotFound = errors.New("test session not found")
	// ErrSessionNotActive guards operations against sessions that have not
	// started or have already completed.
	ErrSessionNotActive = errors.New("test session is not active")
	// ErrAlreadyStarted guards against restarting a running session.
	ErrAlreadyStarted = errors.New("test session already started")
	// ErrUnknownQuestion means the question does not belong to the session's
	// question set.
	ErrUnknownQuestion = errors.New("question does not belong to this session")
	// ErrInvalidConfidence rejects confidence ratings outside 1-5.
	ErrInvalidConfidence = errors.New("confidence level must be between 1 and 5")
	// ErrInvalidDirection rejects navigation directions other than
	// previous/next.
	ErrInvalidDirection = errors.New("navigation direction must be previous or next")
	// ErrForbidden means the session belongs to a different user.
	ErrForbidden = errors.New("test session belongs to another user")
)
