package quiz

import "errors"

// Unanswered is the answer slot value before the player picks an option.
const Unanswered = ""

var (
	// ErrAnswerRequired is returned by Advance while the current question is unanswered.
	ErrAnswerRequired = errors.New("answer required before advancing")

	// ErrSessionCompleted is returned by transitions attempted after completion.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrUnknownOption is returned by SelectAnswer for a choice the current question does not offer.
	ErrUnknownOption = errors.New("choice is not an option of the current question")
)

// State is the phase of the session state machine.
type State int

const (
	StateInProgress State = iota // Answering questions
	StateCompleted               // Results available; only Reset leaves this state
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Transition describes what a successful Advance did.
type Transition int

const (
	TransitionNext      Transition = iota // Moved to the next question
	TransitionCompleted                   // Last question answered; session completed
)

// Session tracks one attempt at a bank. It is not safe for concurrent use;
// each transition runs to completion on the caller's goroutine.
type Session struct {
	bank         *Bank
	currentIndex int
	answers      []string
	completed    bool
}

// NewSession starts a fresh session over bank.
func NewSession(bank *Bank) *Session {
	s := &Session{bank: bank}
	s.Reset()
	return s
}

// Reset discards all answers and returns to the first question.
func (s *Session) Reset() {
	s.currentIndex = 0
	s.answers = make([]string, s.bank.Len())
	s.completed = false
}

// SelectAnswer records choice for the current question, replacing any earlier pick.
func (s *Session) SelectAnswer(choice string) error {
	if s.completed {
		return ErrSessionCompleted
	}
	if !s.bank.questions[s.currentIndex].HasOption(choice) {
		return ErrUnknownOption
	}
	s.answers[s.currentIndex] = choice
	return nil
}

// Advance moves to the next question, or completes the session from the last one.
func (s *Session) Advance() (Transition, error) {
	if s.completed {
		return 0, ErrSessionCompleted
	}
	if s.answers[s.currentIndex] == Unanswered {
		return 0, ErrAnswerRequired
	}
	if s.IsLast() {
		s.completed = true
		return TransitionCompleted, nil
	}
	s.currentIndex++
	return TransitionNext, nil
}

// CanAdvance reports whether Advance would succeed.
func (s *Session) CanAdvance() bool {
	return !s.completed && s.answers[s.currentIndex] != Unanswered
}

// Score counts answers matching the correct answer. Unanswered slots never match.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.bank.questions {
		if s.answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Percentage returns Score as a share of the bank size, in [0, 100].
func (s *Session) Percentage() float64 {
	return float64(s.Score()) / float64(s.bank.Len()) * 100
}

// Progress returns the share of questions already passed, in [0, 100).
func (s *Session) Progress() float64 {
	return float64(s.currentIndex) / float64(s.bank.Len()) * 100
}

func (s *Session) State() State {
	if s.completed {
		return StateCompleted
	}
	return StateInProgress
}

func (s *Session) Completed() bool {
	return s.completed
}

func (s *Session) CurrentIndex() int {
	return s.currentIndex
}

// Current returns the question at the current index.
func (s *Session) Current() Question {
	return s.bank.At(s.currentIndex)
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.currentIndex == s.bank.Len()-1
}

// Answer returns the recorded answer for question i, or Unanswered.
func (s *Session) Answer(i int) string {
	return s.answers[i]
}

// Answers returns a copy of all answer slots.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// AllAnswered reports whether every slot holds an answer.
func (s *Session) AllAnswered() bool {
	for _, a := range s.answers {
		if a == Unanswered {
			return false
		}
	}
	return true
}

func (s *Session) Bank() *Bank {
	return s.bank
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return s.bank.Len()
}
