package quiz

import (
	"errors"
	"fmt"
)

// OptionsPerQuestion is the number of candidate answers every question carries.
const OptionsPerQuestion = 4

// ErrInvalidBank is returned when a question bank violates its invariants.
var ErrInvalidBank = errors.New("invalid question bank")

// Question is a single multiple-choice question. Option order is display order.
type Question struct {
	ID            int
	Prompt        string
	Options       []string
	CorrectAnswer string
}

// HasOption reports whether choice is one of the question's options.
func (q Question) HasOption(choice string) bool {
	for _, opt := range q.Options {
		if opt == choice {
			return true
		}
	}
	return false
}

// OptionIndex returns the position of choice in Options, or -1.
func (q Question) OptionIndex(choice string) int {
	for i, opt := range q.Options {
		if opt == choice {
			return i
		}
	}
	return -1
}

// Bank is an ordered, read-only set of questions.
type Bank struct {
	questions []Question
}

// NewBank validates questions and returns a Bank holding a private copy.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidBank)
	}

	seen := make(map[int]bool, len(questions))
	copied := make([]Question, len(questions))
	for i, q := range questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrInvalidBank, q.ID)
		}
		seen[q.ID] = true

		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrInvalidBank, q.ID, err)
		}

		copied[i] = cloneQuestion(q)
	}

	return &Bank{questions: copied}, nil
}

func validateQuestion(q Question) error {
	if q.Prompt == "" {
		return errors.New("empty prompt")
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("want %d options, got %d", OptionsPerQuestion, len(q.Options))
	}

	matches := 0
	distinct := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt == Unanswered {
			return errors.New("empty option")
		}
		if distinct[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		distinct[opt] = true
		if opt == q.CorrectAnswer {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("correct answer %q not among options", q.CorrectAnswer)
	}
	return nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at index i. It panics when i is out of range.
func (b *Bank) At(i int) Question {
	return cloneQuestion(b.questions[i])
}

// Questions returns a copy of the questions in display order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

func cloneQuestion(q Question) Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}

var defaultQuestions = []Question{
	{
		ID:            1,
		Prompt:        "What is the capital of France?",
		Options:       []string{"London", "Berlin", "Paris", "Madrid"},
		CorrectAnswer: "Paris",
	},
	{
		ID:            2,
		Prompt:        "Which planet is known as the Red Planet?",
		Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
		CorrectAnswer: "Mars",
	},
	{
		ID:            3,
		Prompt:        "Who painted the Mona Lisa?",
		Options:       []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"},
		CorrectAnswer: "Leonardo da Vinci",
	},
	{
		ID:            4,
		Prompt:        "What is the largest ocean on Earth?",
		Options:       []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"},
		CorrectAnswer: "Pacific Ocean",
	},
	{
		ID:            5,
		Prompt:        `Which element has the chemical symbol "Au"?`,
		Options:       []string{"Silver", "Gold", "Copper", "Aluminum"},
		CorrectAnswer: "Gold",
	},
}

var defaultBank = mustBank(defaultQuestions)

// DefaultBank returns the built-in five question bank.
func DefaultBank() *Bank {
	return defaultBank
}

func mustBank(questions []Question) *Bank {
	b, err := NewBank(questions)
	if err != nil {
		panic(err)
	}
	return b
}
