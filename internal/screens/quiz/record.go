package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	qz "github.com/abhisek/quizcard/internal/quiz"
	"github.com/abhisek/quizcard/internal/store"
)

const saveTimeout = 5 * time.Second

// newAttemptRecord maps session results onto a history record.
func newAttemptRecord(id string, res qz.Results, startedAt, finishedAt time.Time) store.AttemptRecord {
	answers := make([]store.AnswerRecord, len(res.Questions))
	for i, q := range res.Questions {
		answers[i] = store.AnswerRecord{
			QuestionID:    q.QuestionID,
			Prompt:        q.Prompt,
			Answer:        q.Answer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       q.Correct,
		}
	}
	return store.AttemptRecord{
		ID:         id,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Score:      res.Score,
		Total:      res.Total,
		Answers:    answers,
	}
}

// recordAttempt stores the completed session in the background.
func (s *QuizScreen) recordAttempt() tea.Cmd {
	if s.attempts == nil {
		return nil
	}
	rec := newAttemptRecord(uuid.NewString(), s.session.Results(), s.startedAt, s.now())
	repo := s.attempts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return attemptSavedMsg{ID: rec.ID, Err: repo.Save(ctx, rec)}
	}
}
