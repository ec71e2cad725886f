package quiz

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	qz "github.com/abhisek/quizcard/internal/quiz"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/screens/history"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/components"
	"github.com/abhisek/quizcard/internal/ui/layout"
)

// QuizScreen renders a quiz session: the active question while in progress,
// the results breakdown once completed.
type QuizScreen struct {
	session      *qz.Session
	attempts     store.AttemptRepo
	historyLimit int
	log          *zap.Logger
	now          func() time.Time

	keys      keyMap
	choices   components.ChoiceList
	startedAt time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// Options configures a QuizScreen. Attempts may be nil to skip recording.
type Options struct {
	Bank         *qz.Bank
	Attempts     store.AttemptRepo
	HistoryLimit int
	Logger       *zap.Logger
	Now          func() time.Time
}

// New creates a QuizScreen with a fresh session over opts.Bank.
func New(opts Options) *QuizScreen {
	bank := opts.Bank
	if bank == nil {
		bank = qz.DefaultBank()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &QuizScreen{
		session:      qz.NewSession(bank),
		attempts:     opts.Attempts,
		historyLimit: opts.HistoryLimit,
		log:          log,
		now:          now,
		keys:         defaultKeyMap(),
	}
	s.restart()
	return s
}

// Session exposes the underlying session state.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Init() tea.Cmd {
	s.log.Info("quiz started", zap.Int("questions", s.session.Total()))
	return nil
}

func (s *QuizScreen) Title() string {
	if s.session.Completed() {
		return "Quiz Results"
	}
	return fmt.Sprintf("Question %d", s.session.CurrentIndex()+1)
}

func (s *QuizScreen) Status() string {
	if s.session.Completed() {
		return fmt.Sprintf("Score %d/%d", s.session.Score(), s.session.Total())
	}
	return fmt.Sprintf("%d of %d", s.session.CurrentIndex()+1, s.session.Total())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Completed() {
		hist := s.keys.History
		hist.SetEnabled(s.attempts != nil)
		return layout.HintsFor(s.keys.Retry, hist, s.keys.Back)
	}
	next := s.keys.Next
	next.SetEnabled(s.session.CanAdvance())
	return layout.HintsFor(s.keys.Up, s.keys.Choose, s.keys.Pick, next, s.keys.Back)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		if msg.Err != nil {
			s.log.Error("record attempt", zap.String("attempt_id", msg.ID), zap.Error(msg.Err))
		} else {
			s.log.Info("attempt recorded", zap.String("attempt_id", msg.ID))
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.session.Completed() {
			return s.handleResultsKey(msg)
		}
		return s.handleQuestionKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.choices.Up()
	case key.Matches(msg, s.keys.Down):
		s.choices.Down()
	case key.Matches(msg, s.keys.Pick):
		idx := int(msg.String()[0] - '1')
		if idx < len(s.choices.Options) {
			s.choices.Cursor = idx
			s.choose(s.choices.Options[idx])
		}
	case key.Matches(msg, s.keys.Choose):
		// Choosing the already chosen option presses the advance button.
		if s.choices.Cursor == s.choices.Chosen {
			return s, s.advance()
		}
		s.choose(s.choices.Highlighted())
	case key.Matches(msg, s.keys.Next):
		return s, s.advance()
	}
	return s, nil
}

func (s *QuizScreen) handleResultsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Retry):
		s.log.Info("quiz reset", zap.Int("previous_score", s.session.Score()))
		s.session.Reset()
		s.restart()
	case key.Matches(msg, s.keys.History):
		if s.attempts != nil {
			return s, router.Replace(history.New(s.attempts, s.historyLimit))
		}
	}
	return s, nil
}

func (s *QuizScreen) choose(option string) {
	if err := s.session.SelectAnswer(option); err != nil {
		s.log.Warn("select answer rejected", zap.String("option", option), zap.Error(err))
		return
	}
	s.choices.Chosen = s.choices.Cursor
}

// advance moves the session forward. It returns the recording command when
// the session completes.
func (s *QuizScreen) advance() tea.Cmd {
	tr, err := s.session.Advance()
	if err != nil {
		if !errors.Is(err, qz.ErrAnswerRequired) {
			s.log.Warn("advance rejected", zap.Error(err))
		}
		return nil
	}

	if tr == qz.TransitionCompleted {
		s.log.Info("quiz completed",
			zap.Int("score", s.session.Score()),
			zap.Int("total", s.session.Total()),
			zap.Duration("duration", s.now().Sub(s.startedAt)))
		return s.recordAttempt()
	}

	s.resetChoices()
	return nil
}

// restart prepares the view for a fresh session.
func (s *QuizScreen) restart() {
	s.startedAt = s.now()
	s.resetChoices()
}

// resetChoices builds the selector for the current question, pre-populated
// with any recorded answer.
func (s *QuizScreen) resetChoices() {
	q := s.session.Current()
	s.choices = components.NewChoiceList(q.Options, q.OptionIndex(s.session.Answer(s.session.CurrentIndex())))
}
