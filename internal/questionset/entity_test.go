package questionset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionSetValidate(t *testing.T) {
	valid := func() *QuestionSet {
		return &QuestionSet{
			Name:            "GS Paper I Mock 3",
			TestType:        "mock",
			DurationSeconds: DefaultDurationSeconds,
			NegativeMark:    DefaultNegativeMark,
		}
	}

	assert.NoError(t, valid().Validate())

	t.Run("MissingName", func(t *testing.T) {
		qs := valid()
		qs.Name = ""
		assert.Error(t, qs.Validate())
	})

	t.Run("NonPositiveDuration", func(t *testing.T) {
		qs := valid()
		qs.DurationSeconds = 0
		assert.Error(t, qs.Validate())
	})

	t.Run("NegativeMarkOutOfRange", func(t *testing.T) {
		qs := valid()
		qs.NegativeMark = 1
		assert.Error(t, qs.Validate())

		qs.NegativeMark = -0.1
		assert.Error(t, qs.Validate())
	})

	t.Run("ZeroNegativeMarkAllowed", func(t *testing.T) {
		qs := valid()
		qs.NegativeMark = 0
		assert.NoError(t, qs.Validate())
	})

	t.Run("UnknownTestType", func(t *testing.T) {
		qs := valid()
		qs.TestType = "marathon"
		assert.Error(t, qs.Validate())
	})
}
