package voicememo

// Framing classifies why a reflective memo is being requested.
type Framing string

const (
	FramingWrongAnswer          Framing = "wrong_answer"
	FramingLowConfidenceCorrect Framing = "low_confidence_correct"
	FramingHighConfidenceWrong  Framing = "high_confidence_wrong"
)

// PromptType tells the feedback analyzer what to focus on.
type PromptType string

const (
	PromptReasoning       PromptType = "reasoning"
	PromptMistakeAnalysis PromptType = "mistake_analysis"
)

// Decision is the outcome of the trigger policy for one answered question.
type Decision struct {
	Trigger     bool    `json:"trigger"`
	Framing     Framing `json:"framing,omitempty"`
	Title       string  `json:"title,omitempty"`
	Prompt      string  `json:"prompt,omitempty"`
	Description string  `json:"description,omitempty"`
}

type framingContent struct {
	title       string
	prompt      string
	description string
}

var framings = map[Framing]framingContent{
	FramingWrongAnswer: {
		title:       "Learn from this mistake",
		prompt:      "What was your line of reasoning? Where do you think you went wrong?",
		description: "Recording a voice memo helps you understand your mistakes better",
	},
	FramingLowConfidenceCorrect: {
		title:       "Reinforce your success",
		prompt:      "You got it right! What was your thought process?",
		description: "Even when correct, understanding your reasoning builds confidence",
	},
	FramingHighConfidenceWrong: {
		title:       "Analyze overconfidence",
		prompt:      "You were confident but got it wrong. What led to this mistake?",
		description: "Overconfidence errors are valuable learning opportunities",
	},
}

// Evaluate decides whether a reflective memo should be requested for an
// answered question. The thresholds are the pedagogical contract: any wrong
// answer triggers, with confidence >= 4 framed as overconfidence; a correct
// answer triggers only when confidence <= 2.
func Evaluate(isCorrect bool, confidence int) Decision {
	var framing Framing

	switch {
	case !isCorrect && confidence >= 4:
		framing = FramingHighConfidenceWrong
	case !isCorrect:
		framing = FramingWrongAnswer
	case confidence <= 2:
		framing = FramingLowConfidenceCorrect
	default:
		return Decision{}
	}

	content := framings[framing]
	return Decision{
		Trigger:     true,
		Framing:     framing,
		Title:       content.title,
		Prompt:      content.prompt,
		Description: content.description,
	}
}

// PromptTypeFor maps a framing to the analyzer focus.
func (f Framing) PromptTypeFor() PromptType {
	if f == FramingLowConfidenceCorrect {
		return PromptReasoning
	}
	return PromptMistakeAnalysis
}
