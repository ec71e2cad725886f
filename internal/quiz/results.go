package quiz

import "math"

// QuestionResult is one line of the results breakdown.
type QuestionResult struct {
	QuestionID    int
	Prompt        string
	Answer        string
	CorrectAnswer string
	Correct       bool
}

// Results summarises a session for display and recording.
type Results struct {
	Score      int
	Total      int
	Percentage float64
	Questions  []QuestionResult
}

// RoundedPercentage returns Percentage rounded to the nearest integer.
func (r Results) RoundedPercentage() int {
	return int(math.Round(r.Percentage))
}

// Missed returns the breakdown entries that did not match the correct answer.
func (r Results) Missed() []QuestionResult {
	var missed []QuestionResult
	for _, q := range r.Questions {
		if !q.Correct {
			missed = append(missed, q)
		}
	}
	return missed
}

// Results builds the per-question breakdown from the current answers.
// It is defined at any point of the session.
func (s *Session) Results() Results {
	questions := make([]QuestionResult, s.bank.Len())
	for i, q := range s.bank.questions {
		questions[i] = QuestionResult{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			Answer:        s.answers[i],
			CorrectAnswer: q.CorrectAnswer,
			Correct:       s.answers[i] == q.CorrectAnswer,
		}
	}

	return Results{
		Score:      s.Score(),
		Total:      s.bank.Len(),
		Percentage: s.Percentage(),
		Questions:  questions,
	}
}
