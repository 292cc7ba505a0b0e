package aifeedback

// AnalysisRequest carries a voice-memo transcript plus the answer context the
// model needs to ground its feedback.
type AnalysisRequest struct {
	Transcript      string `json:"transcript"`
	QuestionText    string `json:"question_text"`
	SelectedAnswer  string `json:"selected_answer"`
	CorrectAnswer   string `json:"correct_answer"`
	IsCorrect       bool   `json:"is_correct"`
	ConfidenceLevel int    `json:"confidence_level"`
	PromptFocus     string `json:"prompt_focus"` // reasoning | mistake_analysis
}

// Feedback is the structured analysis returned by the model.
type Feedback struct {
	Summary         string   `json:"summary"`
	KeyInsights     []string `json:"keyInsights"`
	MissingConcepts []string `json:"missingConcepts"`
	LogicErrors     []string `json:"logicErrors"`
	Recommendations []string `json:"recommendations"`
	Clarifications  []string `json:"clarifications"`
	Counterpoints   []string `json:"counterpoints"`
	ConfidenceScore float64  `json:"confidenceScore"`
}
