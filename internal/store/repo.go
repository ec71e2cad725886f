package store

import (
	"context"
	"time"
)

// AnswerRecord is one question of a recorded attempt.
type AnswerRecord struct {
	QuestionID    int    `json:"question_id"`
	Prompt        string `json:"prompt"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

// AttemptRecord is a completed quiz attempt.
type AttemptRecord struct {
	ID         string
	Sequence   int64
	StartedAt  time.Time
	FinishedAt time.Time
	Score      int
	Total      int
	Answers    []AnswerRecord
}

// Percentage returns the attempt score as a share of Total, in [0, 100].
func (a AttemptRecord) Percentage() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Score) / float64(a.Total) * 100
}

// Duration is the time between the first question and completion.
func (a AttemptRecord) Duration() time.Duration {
	return a.FinishedAt.Sub(a.StartedAt)
}

// AttemptRepo records completed attempts. Sessions in progress are never stored.
type AttemptRepo interface {
	// Save stores a completed attempt.
	Save(ctx context.Context, rec AttemptRecord) error

	// Recent returns up to limit attempts, newest first. limit <= 0 means no limit.
	Recent(ctx context.Context, limit int) ([]AttemptRecord, error)

	// Count returns the number of stored attempts.
	Count(ctx context.Context) (int, error)

	// Clear deletes every stored attempt and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}
