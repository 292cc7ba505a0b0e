package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionLabel(t *testing.T) {
	for _, valid := range []string{"A", "B", "C", "D"} {
		label, err := ParseOptionLabel(valid)
		require.NoError(t, err)
		assert.Equal(t, OptionLabel(valid), label)
	}

	for _, invalid := range []string{"", "a", "E", "AB", "1"} {
		_, err := ParseOptionLabel(invalid)
		assert.Error(t, err, "label %q", invalid)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"easy", "medium", "hard"} {
		d, err := ParseDifficulty(valid)
		require.NoError(t, err)
		assert.Equal(t, Difficulty(valid), d)
	}

	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
}

func TestQuestionValidate(t *testing.T) {
	valid := func() *Question {
		return &Question{
			QuestionText:    "Which article of the Constitution deals with the Right to Equality?",
			OptionA:         "Article 14",
			OptionB:         "Article 19",
			OptionC:         "Article 21",
			OptionD:         "Article 32",
			CorrectAnswer:   OptionA,
			Topic:           "polity",
			DifficultyLevel: DifficultyMedium,
		}
	}

	assert.NoError(t, valid().Validate())

	t.Run("MissingText", func(t *testing.T) {
		q := valid()
		q.QuestionText = ""
		assert.Error(t, q.Validate())
	})

	t.Run("MissingOption", func(t *testing.T) {
		q := valid()
		q.OptionC = ""
		assert.Error(t, q.Validate())
	})

	t.Run("BadCorrectAnswer", func(t *testing.T) {
		q := valid()
		q.CorrectAnswer = "E"
		assert.Error(t, q.Validate())
	})

	t.Run("MissingTopic", func(t *testing.T) {
		q := valid()
		q.Topic = ""
		assert.Error(t, q.Validate())
	})
}
