package testsession

import "math"

// Aggregates holds the submission-time results of a session.
type Aggregates struct {
	TotalAttempted   int     `json:"total_attempted"`
	CorrectCount     int     `json:"correct_count"`
	WrongCount       int     `json:"wrong_count"`
	SkippedCount     int     `json:"skipped_count"`
	RawScore         float64 `json:"raw_score"`
	NegativeMarks    float64 `json:"negative_marks"`
	FinalScore       float64 `json:"final_score"`
	TimeTakenSeconds int     `json:"time_taken_seconds"`
}

// round2 rounds to two decimal places, the stated rounding policy for every
// fractional score this service reports.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// computeAggregates applies the marking scheme: one mark per correct answer,
// negativeMark deducted per wrong answer, skipped questions contribute
// nothing, and the final score never goes below zero.
func computeAggregates(totalQuestions, correct, wrong int, negativeMark float64, elapsedSeconds int) Aggregates {
	attempted := correct + wrong
	negative := float64(wrong) * negativeMark
	final := math.Max(0, float64(correct)-negative)

	return Aggregates{
		TotalAttempted:   attempted,
		CorrectCount:     correct,
		WrongCount:       wrong,
		SkippedCount:     totalQuestions - attempted,
		RawScore:         float64(correct),
		NegativeMarks:    round2(negative),
		FinalScore:       round2(final),
		TimeTakenSeconds: elapsedSeconds,
	}
}
