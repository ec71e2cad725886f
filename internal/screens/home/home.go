package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	qz "github.com/abhisek/quizcard/internal/quiz"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/screens/history"
	quizscreen "github.com/abhisek/quizcard/internal/screens/quiz"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/components"
	"github.com/abhisek/quizcard/internal/ui/layout"
)

// stats summarises recorded attempts for the home screen.
type stats struct {
	Attempts  int
	BestScore int
	BestTotal int
}

type statsLoadedMsg struct {
	Stats stats
	Err   error
}

// Options carries the dependencies the home screen hands to the screens it opens.
type Options struct {
	Bank         *qz.Bank
	Attempts     store.AttemptRepo // nil disables history
	HistoryLimit int
	Logger       *zap.Logger
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts   Options
	menu   components.Menu
	stats  stats
	loaded bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	h := &HomeScreen{opts: opts}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return router.Push(quizscreen.New(quizscreen.Options{
				Bank:         opts.Bank,
				Attempts:     opts.Attempts,
				HistoryLimit: opts.HistoryLimit,
				Logger:       opts.Logger,
			}))
		}},
		{Label: "HISTORY", Disabled: opts.Attempts == nil, Action: func() tea.Cmd {
			return router.Push(history.New(opts.Attempts, opts.HistoryLimit))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads stats after a quiz or the history screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return append(layout.HintsFor(h.menu.Keys.Up, h.menu.Keys.Select),
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			h.opts.Logger.Warn("load attempt stats", zap.Error(msg.Err))
		} else {
			h.stats = msg.Stats
		}
		h.loaded = true
		return h, nil

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStats(h.stats, h.loaded, cw),
		h.menu.View(),
	}
	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// loadStats reads attempt stats in the background. Without a store there is
// nothing to load.
func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.opts.Attempts
	if repo == nil {
		h.loaded = true
		return nil
	}
	return func() tea.Msg {
		attempts, err := repo.Recent(context.Background(), 0)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: summarize(attempts)}
	}
}

func summarize(attempts []store.AttemptRecord) stats {
	st := stats{Attempts: len(attempts)}
	best := -1.0
	for _, a := range attempts {
		if p := a.Percentage(); p > best {
			best = p
			st.BestScore = a.Score
			st.BestTotal = a.Total
		}
	}
	return st
}
