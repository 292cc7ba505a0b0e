package testsession

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/prepwise/upsc-prep-lambda/internal/question"
)

// QuestionView is a Question stripped of the correct answer and explanation,
// safe to hand to a client mid-session.
type QuestionView struct {
	ID              uuid.UUID           `json:"id"`
	QuestionText    string              `json:"question_text"`
	OptionA         string              `json:"option_a"`
	OptionB         string              `json:"option_b"`
	OptionC         string              `json:"option_c"`
	OptionD         string              `json:"option_d"`
	Topic           string              `json:"topic"`
	SubTopic        *string             `json:"sub_topic,omitempty"`
	DifficultyLevel question.Difficulty `json:"difficulty_level"`
	QuestionType    string              `json:"question_type"`
	Tags            datatypes.JSON      `json:"tags,omitempty"`
}

func newQuestionView(q *question.Question) QuestionView {
	return QuestionView{
		ID:              q.ID,
		QuestionText:    q.QuestionText,
		OptionA:         q.OptionA,
		OptionB:         q.OptionB,
		OptionC:         q.OptionC,
		OptionD:         q.OptionD,
		Topic:           q.Topic,
		SubTopic:        q.SubTopic,
		DifficultyLevel: q.DifficultyLevel,
		QuestionType:    q.QuestionType,
		Tags:            q.Tags,
	}
}

// Snapshot is the engine state a client needs to render the test screen.
type Snapshot struct {
	SessionID        uuid.UUID         `json:"session_id"`
	Status           SessionStatus     `json:"status"`
	CurrentIndex     int               `json:"current_index"`
	TotalQuestions   int               `json:"total_questions"`
	RemainingSeconds int               `json:"remaining_seconds"`
	CurrentQuestion  *QuestionView     `json:"current_question,omitempty"`
	Answers          map[string]string `json:"answers"`
	Confidence       map[string]int    `json:"confidence"`
	Flagged          []string          `json:"flagged"`
	AnsweredCount    int               `json:"answered_count"`
}

type startSessionRequest struct {
	QuestionSetID string `json:"question_set_id"`
}

type answerRequest struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

type confidenceRequest struct {
	QuestionID string `json:"question_id"`
	Level      int    `json:"level"`
}

type navigateRequest struct {
	Direction string `json:"direction,omitempty"`
	Index     *int   `json:"index,omitempty"`
}

type flagRequest struct {
	QuestionID string `json:"question_id"`
}

// SessionResults bundles the completed session with its attempt rows.
type SessionResults struct {
	Session  *TestSession       `json:"session"`
	Attempts []*QuestionAttempt `json:"attempts"`
}
