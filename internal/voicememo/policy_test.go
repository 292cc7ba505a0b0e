package voicememo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		isCorrect  bool
		confidence int
		framing    Framing
	}{
		{"WrongAtConfidenceFour", false, 4, FramingHighConfidenceWrong},
		{"WrongAtConfidenceFive", false, 5, FramingHighConfidenceWrong},
		{"WrongAtConfidenceThree", false, 3, FramingWrongAnswer},
		{"WrongAtConfidenceOne", false, 1, FramingWrongAnswer},
		{"CorrectAtConfidenceTwo", true, 2, FramingLowConfidenceCorrect},
		{"CorrectAtConfidenceOne", true, 1, FramingLowConfidenceCorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Evaluate(tt.isCorrect, tt.confidence)
			assert.True(t, decision.Trigger)
			assert.Equal(t, tt.framing, decision.Framing)
			assert.NotEmpty(t, decision.Title)
			assert.NotEmpty(t, decision.Prompt)
		})
	}

	t.Run("CorrectAndConfidentNeverTriggers", func(t *testing.T) {
		for _, level := range []int{3, 4, 5} {
			decision := Evaluate(true, level)
			assert.False(t, decision.Trigger, "confidence %d", level)
		}
	})
}

func TestFramingPromptType(t *testing.T) {
	assert.Equal(t, PromptReasoning, FramingLowConfidenceCorrect.PromptTypeFor())
	assert.Equal(t, PromptMistakeAnalysis, FramingHighConfidenceWrong.PromptTypeFor())
	assert.Equal(t, PromptMistakeAnalysis, FramingWrongAnswer.PromptTypeFor())
}
